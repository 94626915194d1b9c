package config

import "sort"

// Presets are common gas mixtures keyed by name.
var Presets = map[string]*Config{
	"air5": {
		Species:       []string{"N2", "O2", "NO", "N", "O"},
		MassFractions: map[string]float64{"N2": 0.767, "O2": 0.233},
	},
	"air11": {
		Species: []string{"N2", "O2", "NO", "N", "O", "N2+", "O2+", "NO+", "N+", "O+", "e"},
		MassFractions: map[string]float64{
			"N2": 0.6, "O2": 0.05, "NO": 0.05, "N": 0.15, "O": 0.149,
			"NO+": 0.000999, "e": 0.000001,
		},
	},
	"argon": {
		Species:       []string{"Ar", "Ar+", "e"},
		MassFractions: map[string]float64{"Ar": 0.999, "Ar+": 0.000999, "e": 0.000001},
	},
	"combustion": {
		Species: []string{"N2", "O2", "H2O", "CO2", "CO", "H2", "OH", "H", "O"},
		MassFractions: map[string]float64{
			"N2": 0.72, "H2O": 0.12, "CO2": 0.14, "O2": 0.02,
		},
	},
	"mars": {
		Species:       []string{"CO2", "N2", "Ar", "CO", "O2", "O", "C"},
		MassFractions: map[string]float64{"CO2": 0.97, "N2": 0.019, "Ar": 0.011},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := cfg.Clone()
	out.Temperature = DefaultTemperature
	out.Sweep = SweepConfig{TMin: DefaultTMin, TMax: DefaultTMax, Points: DefaultPoints}
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
