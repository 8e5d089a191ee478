package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/vecgrad/autodiff"
	"github.com/born-ml/vecgrad/tensor"
)

// Config holds the inputs of the demo expression.
//
// X, Y and Seed accept anything tensor.FromNested accepts: a number or a
// (nested) list of numbers.
type Config struct {
	X      any    `yaml:"x"`
	Y      any    `yaml:"y"`
	Seed   any    `yaml:"seed"`
	Policy string `yaml:"policy"`
}

// DefaultConfig returns x=[1,2,3], y=[4,5,6], seed 1 and the accumulate policy.
func DefaultConfig() Config {
	return Config{
		X:      []int{1, 2, 3},
		Y:      []int{4, 5, 6},
		Seed:   1,
		Policy: autodiff.Accumulate.String(),
	}
}

// LoadConfig reads a YAML config. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks that every input converts to an array and that the policy is known.
func (c Config) Validate() error {
	if _, err := autodiff.ParsePolicy(c.Policy); err != nil {
		return err
	}
	for name, v := range map[string]any{"x": c.X, "y": c.Y, "seed": c.Seed} {
		if v == nil {
			return errors.Errorf("%s: value is required", name)
		}
		if _, err := tensor.FromNested(v); err != nil {
			return errors.Wrapf(err, "%s", name)
		}
	}
	return nil
}
