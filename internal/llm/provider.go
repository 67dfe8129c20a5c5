// Package llm generates an optional narrative of a computed equilibrium
// dataset. The narrative is presentation only: it is produced after the
// sweep from the finished report and never feeds back into the numbers.
package llm

import (
	"context"
	"fmt"
	"math"

	"github.com/makhan/raoult/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Narrate generates a prose description of the dataset
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// NarrateRequest contains the input for narrative generation
type NarrateRequest struct {
	// Report is the finished sweep report to describe
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// NarrateResponse contains the generated narrative
type NarrateResponse struct {
	// Text is the generated narrative
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults (disabled)
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "",
		Timeout:   30,
		MaxTokens: 800,
	}
}

// BuildPrompt constructs the default narration prompt. Only numbers already
// present in the report go into the prompt; the model is told not to invent
// any others.
func BuildPrompt(report model.Report) string {
	mix := report.Mixture

	prompt := fmt.Sprintf(`You are describing a vapor-liquid equilibrium dataset for a chemical engineering report. The dataset was computed with Raoult's law and the Antoine correlation for an ideal binary mixture.

RULES:
1. Only reference the numbers given below. Do not invent or extrapolate values.
2. Describe phase behavior (bubble point trend, vapor enrichment), not the computation.
3. 3-5 sentences, plain prose, suitable for placing under a T-x-y diagram.

System:
- Mixture: %s
- Total pressure: %g mmHg
- First component (swept in x): %s
- Second component: %s
- Converged samples: %d
- Failed samples: %d
`, mix.Name, mix.PressureMmHg, mix.First.Name, mix.Second.Name, len(report.Points), len(report.Failures))

	if len(report.Points) > 0 {
		first := report.Points[0]
		last := report.Points[len(report.Points)-1]
		prompt += fmt.Sprintf(`- Bubble point at x=%.3f: %.2f °C
- Bubble point at x=%.3f: %.2f °C
`, first.X, first.T, last.X, last.T)

		if mid := midPoint(report.Points); mid != nil {
			prompt += fmt.Sprintf("- At x=%.3f the vapor fraction is y=%.3f\n", mid.X, mid.Y)
		}
	}

	return prompt
}

// midPoint returns the row closest to equimolar composition
func midPoint(points []model.Point) *model.Point {
	var best *model.Point
	for i := range points {
		if best == nil || math.Abs(points[i].X-0.5) < math.Abs(best.X-0.5) {
			best = &points[i]
		}
	}
	return best
}
