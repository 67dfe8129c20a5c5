package model

import (
	"fmt"
	"sort"
	"strings"
)

// Antoine holds the three empirical constants of the Antoine vapor-pressure
// correlation, fitted for T in °C and P in mmHg:
//
//	log10(Psat) = A - B/(C + T)
type Antoine struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
}

// Component is one chemical species of a binary mixture
type Component struct {
	Name    string  `json:"name" yaml:"name"`
	Antoine Antoine `json:"antoine" yaml:"antoine"`
}

// builtinSpecies is the read-only table of Antoine constants shipped with the
// tool, all fitted in the °C/mmHg form. Heptane and octane carry the reference
// constants used throughout the tests.
var builtinSpecies = map[string]Antoine{
	"heptane":     {A: 6.893, B: 1260.0, C: 216.0},
	"octane":      {A: 6.9094, B: 1351.0, C: 217.0},
	"hexane":      {A: 6.87601, B: 1171.17, C: 224.41},
	"pentane":     {A: 6.87632, B: 1075.78, C: 233.205},
	"benzene":     {A: 6.90565, B: 1211.033, C: 220.79},
	"toluene":     {A: 6.95464, B: 1344.8, C: 219.48},
	"cyclohexane": {A: 6.8413, B: 1201.53, C: 222.65},
	"ethanol":     {A: 8.20417, B: 1642.89, C: 230.3},
	"water":       {A: 8.07131, B: 1730.63, C: 233.426},
}

// LookupSpecies returns the builtin component for a species name
// (case-insensitive)
func LookupSpecies(name string) (Component, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	constants, ok := builtinSpecies[key]
	if !ok {
		return Component{}, fmt.Errorf("unknown species %q (see 'raoult species' for the builtin table)", name)
	}
	return Component{Name: key, Antoine: constants}, nil
}

// SpeciesNames returns the builtin species names in alphabetical order
func SpeciesNames() []string {
	names := make([]string, 0, len(builtinSpecies))
	for name := range builtinSpecies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
