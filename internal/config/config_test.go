package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Material.E0 != 200e9 {
		t.Errorf("expected E0 200e9, got %g", cfg.Material.E0)
	}
	if cfg.TempSweep.Min != -80 || cfg.TempSweep.Max != 150 {
		t.Errorf("expected temperature sweep [-80, 150], got [%g, %g]", cfg.TempSweep.Min, cfg.TempSweep.Max)
	}
	if cfg.TempSweep.Samples != 200 {
		t.Errorf("expected 200 temperature samples, got %d", cfg.TempSweep.Samples)
	}
	if cfg.TimeSweep.Duration != 100 || cfg.TimeSweep.Samples != 100 {
		t.Errorf("unexpected time sweep defaults: %+v", cfg.TimeSweep)
	}
	if len(cfg.TimeSweep.Temperatures) != 8 {
		t.Errorf("expected 8 decay temperatures, got %d", len(cfg.TimeSweep.Temperatures))
	}
}

func TestParameters(t *testing.T) {
	p := DefaultConfig().Parameters()

	if err := p.Validate(); err != nil {
		t.Errorf("default config parameters invalid: %v", err)
	}
	if p.Lambda != 1e-3 {
		t.Errorf("expected lambda 1e-3, got %g", p.Lambda)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Material.Lambda = 2e-3
	cfg.TimeSweep.Duration = 250

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Material.Lambda != 2e-3 {
		t.Errorf("expected lambda 2e-3 after round trip, got %g", loaded.Material.Lambda)
	}
	if loaded.TimeSweep.Duration != 250 {
		t.Errorf("expected duration 250 after round trip, got %g", loaded.TimeSweep.Duration)
	}
	if loaded.Material.E0 != cfg.Material.E0 {
		t.Errorf("expected E0 %g, got %g", cfg.Material.E0, loaded.Material.E0)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cryo")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.TempSweep.Max != 0 {
		t.Errorf("expected cryo sweep capped at 0 C, got %g", cfg.TempSweep.Max)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, n := range names {
		if n == "steel" {
			found = true
		}
	}
	if !found {
		t.Error("expected steel preset in list")
	}
}
