package config

// Presets bundle a material with sweep settings for common scenarios.
// "steel" is the reference set.
var Presets = map[string]*Config{
	"steel": DefaultConfig(),
	"cryo": {
		Material: MaterialConfig{
			E0: 200e9, A0: 1e-4, L0: 0.5, T0: 20,
			Alpha: 12e-6, Beta: 5e-4, Gamma: 1e-4, Lambda: 1e-3,
		},
		TempSweep: TempSweepConfig{Min: -80, Max: 0, Samples: 200},
		TimeSweep: TimeSweepConfig{
			Duration: 100, Samples: 100,
			Temperatures: []float64{-80, -60, -40, -20, -10},
		},
	},
	"creep": {
		Material: MaterialConfig{
			E0: 200e9, A0: 1e-4, L0: 0.5, T0: 20,
			Alpha: 12e-6, Beta: 5e-4, Gamma: 1e-4, Lambda: 5e-3,
		},
		TempSweep: TempSweepConfig{Min: 0, Max: 150, Samples: 200},
		TimeSweep: TimeSweepConfig{
			Duration: 1000, Samples: 200,
			Temperatures: []float64{20, 50, 100, 150},
		},
	},
	"aluminum": {
		Material: MaterialConfig{
			E0: 69e9, A0: 1e-4, L0: 0.5, T0: 20,
			Alpha: 23e-6, Beta: 8e-4, Gamma: 1e-4, Lambda: 1e-3,
		},
		TempSweep: TempSweepConfig{Min: -80, Max: 150, Samples: 200},
		TimeSweep: TimeSweepConfig{
			Duration: 100, Samples: 100,
			Temperatures: []float64{-80, -40, -10, 0, 20, 50, 100, 150},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
