// Package cache memoizes pure-component boiling points. A boiling point
// depends only on the species constants and the total pressure, so batch runs
// sharing species across mixtures never invert the correlation twice. Memory
// only: persisting results is out of scope for this tool.
package cache

import "fmt"

// Cache defines the interface for boiling-point caching
type Cache interface {
	Get(key string) (float64, bool)
	Set(key string, value float64)
	Clear()
}

// Key builds a cache key from a species name and the total pressure
func Key(species string, pressureMmHg float64) string {
	return fmt.Sprintf("raoult:v1:%s:%g", species, pressureMmHg)
}

// Nop is a disabled cache: every lookup misses
type Nop struct{}

func (Nop) Get(string) (float64, bool) { return 0, false }
func (Nop) Set(string, float64)        {}
func (Nop) Clear()                     {}
