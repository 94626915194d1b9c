package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTemperature = 1000.0
	DefaultTMin        = 200.0
	DefaultTMax        = 6000.0
	DefaultPoints      = 200
)

var (
	ErrNoSpecies     = errors.New("config: no species listed")
	ErrBadFraction   = errors.New("config: invalid mass fraction")
	ErrBadSweepRange = errors.New("config: invalid sweep range")
)

// Config describes a mixture and the temperatures to evaluate it at. Empty
// data paths select the embedded datasets.
type Config struct {
	Species       []string           `yaml:"species"`
	MassFractions map[string]float64 `yaml:"mass_fractions"`
	ThermoData    string             `yaml:"thermo_data,omitempty"`
	SpeciesData   string             `yaml:"species_data,omitempty"`
	Temperature   float64            `yaml:"temperature"`
	Sweep         SweepConfig        `yaml:"sweep"`
}

type SweepConfig struct {
	TMin   float64 `yaml:"t_min"`
	TMax   float64 `yaml:"t_max"`
	Points int     `yaml:"points"`
}

// DefaultConfig is the air5 preset at the default temperature and sweep.
func DefaultConfig() *Config {
	return GetPreset("air5")
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// yaml.v3 merges into non-nil maps, so default fractions are only
	// restored when the file has none.
	cfg := DefaultConfig()
	defaults := cfg.MassFractions
	cfg.MassFractions = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.MassFractions == nil {
		cfg.MassFractions = defaults
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

// Validate checks the sweep range and that every fraction names a listed species.
func (c *Config) Validate() error {
	if len(c.Species) == 0 {
		return ErrNoSpecies
	}
	if c.Sweep.TMin <= 0 || c.Sweep.TMax <= c.Sweep.TMin || c.Sweep.Points < 2 {
		return fmt.Errorf("%w: [%g, %g] with %d points", ErrBadSweepRange, c.Sweep.TMin, c.Sweep.TMax, c.Sweep.Points)
	}
	_, err := c.Fractions()
	return err
}

// Fractions returns the mass fractions in species order, normalized to sum to
// one. Species without an entry get zero.
func (c *Config) Fractions() ([]float64, error) {
	listed := make(map[string]int, len(c.Species))
	for i, name := range c.Species {
		listed[name] = i
	}

	y := make([]float64, len(c.Species))
	sum := 0.0
	for name, v := range c.MassFractions {
		i, ok := listed[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not in the species list", ErrBadFraction, name)
		}
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %s = %g", ErrBadFraction, name, v)
		}
		y[i] = v
		sum += v
	}
	if sum == 0 {
		return nil, fmt.Errorf("%w: fractions sum to zero", ErrBadFraction)
	}
	for i := range y {
		y[i] /= sum
	}
	return y, nil
}

func (c *Config) Clone() *Config {
	out := *c
	out.Species = append([]string(nil), c.Species...)
	out.MassFractions = make(map[string]float64, len(c.MassFractions))
	for k, v := range c.MassFractions {
		out.MassFractions[k] = v
	}
	return &out
}
