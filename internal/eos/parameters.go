package eos

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parameters holds per-component model parameters. The three slices are
// indexed in parallel by component.
type Parameters struct {
	M        []float64 `yaml:"m"`         // Segment number.
	Sigma    []float64 `yaml:"sigma"`     // Segment diameter.
	EpsilonK []float64 `yaml:"epsilon_k"` // Dispersion energy over Boltzmann's constant.
}

// NewParameters validates and returns a parameter set. The slices are copied.
func NewParameters(m, sigma, epsilonK []float64) (Parameters, error) {
	p := Parameters{
		M:        append([]float64(nil), m...),
		Sigma:    append([]float64(nil), sigma...),
		EpsilonK: append([]float64(nil), epsilonK...),
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// ReferenceParameters returns the single-component set used as the
// differentiation test vector.
func ReferenceParameters() Parameters {
	return Parameters{
		M:        []float64{2.001829},
		Sigma:    []float64{3.618353},
		EpsilonK: []float64{208.1101},
	}
}

// Components returns the number of components.
func (p Parameters) Components() int {
	return len(p.M)
}

// Validate checks that all slices are non-empty and of equal length.
func (p Parameters) Validate() error {
	n := len(p.M)
	if n == 0 {
		return &ValidationError{Field: "m", Details: "at least one component required", Err: ErrNoComponents}
	}
	if len(p.Sigma) != n {
		return &ValidationError{Field: "sigma", Details: fmt.Sprintf("got %d values, want %d", len(p.Sigma), n), Err: ErrLengthMismatch}
	}
	if len(p.EpsilonK) != n {
		return &ValidationError{Field: "epsilon_k", Details: fmt.Sprintf("got %d values, want %d", len(p.EpsilonK), n), Err: ErrLengthMismatch}
	}
	return nil
}

// LoadParameters decodes a YAML parameter document:
//
//	m: [2.001829]
//	sigma: [3.618353]
//	epsilon_k: [208.1101]
func LoadParameters(r io.Reader) (Parameters, error) {
	var p Parameters
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Parameters{}, fmt.Errorf("decode parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// LoadParametersFile reads parameters from a YAML file.
func LoadParametersFile(path string) (Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("open parameters: %w", err)
	}
	defer f.Close()

	p, err := LoadParameters(f)
	if err != nil {
		return Parameters{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
