// Package pipeline wires one complete run together: mixture validation, the
// composition sweep, report assembly, rendering, and the optional narrative.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/makhan/raoult/internal/cache"
	"github.com/makhan/raoult/internal/llm"
	"github.com/makhan/raoult/internal/model"
	"github.com/makhan/raoult/internal/report"
	"github.com/makhan/raoult/internal/sweep"
	"github.com/makhan/raoult/internal/validate"
)

// Pipeline orchestrates the complete sweep process
type Pipeline struct {
	config     *model.Config
	bps        cache.Cache
	renderer   *report.Renderer
	summarizer *llm.Summarizer // Optional narrative (nil if disabled)
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var bps cache.Cache = cache.Nop{}
	if cfg.Cache.Enabled {
		bps = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		config:     cfg,
		bps:        bps,
		renderer:   report.NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
	}
}

// Sweep validates the mixture, runs the composition sweep, and assembles the
// full report
func (p *Pipeline) Sweep(ctx context.Context, mix model.Mixture) (*model.Report, error) {
	mix.ApplyDefaults(p.config)

	// 1. Validate the system definition before touching the solver
	if err := validate.Error(mix); err != nil {
		return nil, err
	}

	// 2. Run the sweep
	sweeper := sweep.New(mix, p.config, p.bps)
	points, failures, err := sweeper.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	// 3. Build the report
	lo, hi := sweeper.Bracket()
	rep := &model.Report{
		RunID:       uuid.NewString(),
		Mixture:     mix,
		GeneratedAt: time.Now().UTC(),
		Points:      points,
		Failures:    failures,
		Solver: model.SolverInfo{
			Method:        "brent",
			BracketLow:    lo,
			BracketHigh:   hi,
			ToleranceMmHg: p.config.Solver.ToleranceMmHg,
		},
	}

	// 4. Generate the narrative if enabled (AFTER the sweep, never feeds back)
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		note, err := p.summarizer.GenerateNote(ctx, *rep)
		if err != nil {
			// Don't fail the run, just warn
			fmt.Printf("Warning: narrative generation failed: %v\n", err)
		} else if note != nil {
			rep.LLM = note
		}
	}

	return rep, nil
}

// RenderReport renders the report to the requested outputs
func (p *Pipeline) RenderReport(rep *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(rep, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(rep, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(rep)

	return nil
}
