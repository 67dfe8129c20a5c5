package model

import (
	"runtime"
	"time"
)

// Config is the complete runtime configuration, assembled from flags,
// environment variables, the config file, and these defaults
type Config struct {
	PressureMmHg float64 `json:"pressure_mmhg" yaml:"pressure_mmhg"` // Total system pressure
	Samples      int     `json:"samples" yaml:"samples"`             // Composition grid size

	Solver      SolverConfig      `json:"solver" yaml:"solver"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Output      OutputConfig      `json:"output" yaml:"output"`
	LLM         LLMConfig         `json:"llm" yaml:"llm"`
}

// SolverConfig controls the bubble-point root finder
type SolverConfig struct {
	ToleranceMmHg float64 `json:"tolerance_mmhg" yaml:"tolerance_mmhg"` // Residual acceptance threshold
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"` // Brent iteration cap
}

// ConcurrencyConfig controls sweep parallelism
type ConcurrencyConfig struct {
	Workers int `json:"workers" yaml:"workers"` // Worker goroutines per sweep
}

// CacheConfig controls the boiling-point memory cache
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"`
}

// LLMConfig controls the optional narrative generator
type LLMConfig struct {
	Provider  string `json:"provider,omitempty" yaml:"provider"` // openai, ollama, "" (disabled)
	Model     string `json:"model,omitempty" yaml:"model"`
	APIKey    string `json:"-" yaml:"-"` // Never serialized
	BaseURL   string `json:"base_url,omitempty" yaml:"base_url"`
	Timeout   int    `json:"timeout" yaml:"timeout"` // Seconds
	MaxTokens int    `json:"max_tokens" yaml:"max_tokens"`
}

// DefaultConfig returns the built-in defaults: the reference 760 mmHg /
// 21-sample configuration with caching on and the LLM disabled
func DefaultConfig() *Config {
	return &Config{
		PressureMmHg: 760,
		Samples:      21,
		Solver: SolverConfig{
			ToleranceMmHg: 1e-6,
			MaxIterations: 100,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 800,
		},
	}
}
