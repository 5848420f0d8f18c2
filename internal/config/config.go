// Package config holds the small, validated set of knobs the demo binary
// needs: candidate-generation parameters and default blend weights. The
// library core (pkg/*, internal/disambiguator) takes these as plain Go
// values; this package only supplies the defaults and validates a Config
// value. It does not read environment variables or command-line flags.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Yatrogenesis/NL-SRE-Semantico/internal/disambiguator"
	"github.com/Yatrogenesis/NL-SRE-Semantico/pkg/model"
)

var validate = validator.New()

// Config is the validated set of runtime parameters for a disambiguation
// run: the candidate-generation bounds (spec §9 Open Question) and the
// default blend weights (spec §3).
type Config struct {
	EditDistanceCap int         `validate:"gt=0"`
	CandidateCap    int         `validate:"gt=0"`
	Alpha           float64     `validate:"gte=0,lte=1"`
	Beta            float64     `validate:"gte=0,lte=1"`
	Gamma           float64     `validate:"gte=0,lte=1"`
}

// Default returns the spec's documented defaults: k=3, cap=64, weights
// 0.30/0.30/0.40.
func Default() Config {
	w := model.DefaultWeights()
	return Config{
		EditDistanceCap: 3,
		CandidateCap:    64,
		Alpha:           w.Alpha,
		Beta:            w.Beta,
		Gamma:           w.Gamma,
	}
}

// New validates cfg against its struct tags and the simplex constraint on
// the three weights, returning a wrapped validation error on failure.
func New(cfg Config) (Config, error) {
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Weights().Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Weights extracts the (α, β, γ) blend coefficients as a model.Weights.
func (c Config) Weights() model.Weights {
	return model.Weights{Alpha: c.Alpha, Beta: c.Beta, Gamma: c.Gamma}
}

// DisambiguatorConfig extracts the candidate-generation bounds as a
// disambiguator.Config.
func (c Config) DisambiguatorConfig() disambiguator.Config {
	return disambiguator.Config{EditDistanceCap: c.EditDistanceCap, CandidateCap: c.CandidateCap}
}
