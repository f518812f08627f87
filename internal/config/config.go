package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springlab/internal/material"
)

// Reference sweep bounds.
const (
	DefaultTMin        = -80.0
	DefaultTMax        = 150.0
	DefaultTempSamples = 200
	DefaultDuration    = 100.0
	DefaultTimeSamples = 100
)

// DefaultDecayTemperatures are the fixed temperatures of the reference
// multi-temperature decay sweep.
var DefaultDecayTemperatures = []float64{-80, -40, -10, 0, 20, 50, 100, 150}

type Config struct {
	Material  MaterialConfig  `yaml:"material"`
	TempSweep TempSweepConfig `yaml:"temperature_sweep"`
	TimeSweep TimeSweepConfig `yaml:"time_sweep"`
}

type MaterialConfig struct {
	E0     float64 `yaml:"e0"`
	A0     float64 `yaml:"a0"`
	L0     float64 `yaml:"l0"`
	T0     float64 `yaml:"t0"`
	Alpha  float64 `yaml:"alpha"`
	Beta   float64 `yaml:"beta"`
	Gamma  float64 `yaml:"gamma"`
	Lambda float64 `yaml:"lambda"`
}

type TempSweepConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Samples int     `yaml:"samples"`
}

type TimeSweepConfig struct {
	Duration     float64   `yaml:"duration"`
	Samples      int       `yaml:"samples"`
	Temperatures []float64 `yaml:"temperatures"`
}

func DefaultConfig() *Config {
	return &Config{
		Material: MaterialConfig{
			E0:     material.DefaultE0,
			A0:     material.DefaultA0,
			L0:     material.DefaultL0,
			T0:     material.DefaultT0,
			Alpha:  material.DefaultAlpha,
			Beta:   material.DefaultBeta,
			Gamma:  material.DefaultGamma,
			Lambda: material.DefaultLambda,
		},
		TempSweep: TempSweepConfig{
			Min:     DefaultTMin,
			Max:     DefaultTMax,
			Samples: DefaultTempSamples,
		},
		TimeSweep: TimeSweepConfig{
			Duration:     DefaultDuration,
			Samples:      DefaultTimeSamples,
			Temperatures: append([]float64(nil), DefaultDecayTemperatures...),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters converts the material block into a model parameter set.
func (c *Config) Parameters() material.Parameters {
	return material.Parameters{
		E0:     c.Material.E0,
		A0:     c.Material.A0,
		L0:     c.Material.L0,
		T0:     c.Material.T0,
		Alpha:  c.Material.Alpha,
		Beta:   c.Material.Beta,
		Gamma:  c.Material.Gamma,
		Lambda: c.Material.Lambda,
	}
}
