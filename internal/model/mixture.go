package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mixture describes one binary VLE run: two components, a fixed total
// pressure, and the size of the composition grid. The first component is the
// one whose liquid mole fraction x is swept; by convention it should be the
// more volatile (lower-boiling) of the pair.
type Mixture struct {
	Name         string    `json:"name" yaml:"name"`
	First        Component `json:"first" yaml:"first"`
	Second       Component `json:"second" yaml:"second"`
	PressureMmHg float64   `json:"pressure_mmhg" yaml:"pressure_mmhg"`
	Samples      int       `json:"samples" yaml:"samples"`
}

// MixtureFile is the on-disk YAML format for batch manifests: one or more
// mixture definitions
type MixtureFile struct {
	Mixtures []Mixture `yaml:"mixtures"`
}

// DefaultMixture returns the reference heptane-octane system at 760 mmHg
// with the 21-point composition grid
func DefaultMixture() Mixture {
	heptane, _ := LookupSpecies("heptane")
	octane, _ := LookupSpecies("octane")
	return Mixture{
		Name:         "heptane-octane",
		First:        heptane,
		Second:       octane,
		PressureMmHg: 760,
		Samples:      21,
	}
}

// ApplyDefaults fills unset pressure and sample count from the configuration
func (m *Mixture) ApplyDefaults(cfg *Config) {
	if m.PressureMmHg == 0 {
		m.PressureMmHg = cfg.PressureMmHg
	}
	if m.Samples == 0 {
		m.Samples = cfg.Samples
	}
	if m.Name == "" {
		m.Name = m.First.Name + "-" + m.Second.Name
	}
}

// LoadMixture reads a single mixture definition from a YAML file
func LoadMixture(path string) (Mixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mixture{}, fmt.Errorf("read mixture file: %w", err)
	}

	var mix Mixture
	if err := yaml.Unmarshal(data, &mix); err != nil {
		return Mixture{}, fmt.Errorf("parse mixture file %s: %w", path, err)
	}
	return mix, nil
}

// LoadMixtures reads a batch manifest containing several mixtures
func LoadMixtures(path string) ([]Mixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch manifest: %w", err)
	}

	var file MixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse batch manifest %s: %w", path, err)
	}
	if len(file.Mixtures) == 0 {
		return nil, fmt.Errorf("batch manifest %s contains no mixtures", path)
	}
	return file.Mixtures, nil
}
