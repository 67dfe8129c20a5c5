package llm

import (
	"context"
	"fmt"

	"github.com/makhan/raoult/internal/model"
)

// Summarizer produces the optional report narrative through whichever
// provider is configured. A nil provider means the feature is off.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. An empty provider
// name yields a disabled summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider's name, or "" when disabled
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// GenerateNote produces a narrative for the finished report. Returns nil
// without error when the summarizer is disabled.
func (s *Summarizer) GenerateNote(ctx context.Context, report model.Report) (*model.LLMNote, error) {
	if s.provider == nil {
		return nil, nil
	}

	if !s.provider.IsAvailable(ctx) {
		return nil, fmt.Errorf("LLM provider %s is not available", s.provider.Name())
	}

	resp, err := s.provider.Narrate(ctx, NarrateRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}

	return &model.LLMNote{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}
