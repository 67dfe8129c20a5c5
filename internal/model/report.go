package model

import "time"

// Point is one converged row of the equilibrium table: liquid mole fraction x
// of the first component, derived vapor mole fraction y, and bubble-point
// temperature T in °C. Values are stored at full precision; any rounding is a
// rendering concern.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T float64 `json:"t_celsius"`
}

// SampleFailure records a composition sample whose solve did not produce a
// physically valid equilibrium point. Failures never abort the sweep; the
// remaining samples are independent.
type SampleFailure struct {
	Index  int     `json:"index"`  // Position in the composition grid (0-based)
	X      float64 `json:"x"`      // Liquid mole fraction of the failed sample
	Reason string  `json:"reason"` // Human-readable error description
}

// Report is the complete result of one composition sweep
type Report struct {
	RunID       string    `json:"run_id"`       // Unique identifier for this run
	Mixture     Mixture   `json:"mixture"`      // System definition the sweep used
	GeneratedAt time.Time `json:"generated_at"` // When the sweep ran

	Points   []Point         `json:"points"`             // Converged rows, ascending x
	Failures []SampleFailure `json:"failures,omitempty"` // Samples that failed validation

	Solver SolverInfo `json:"solver"` // How the roots were found

	LLM *LLMNote `json:"llm,omitempty"` // Optional narrative (never affects the data)
}

// SolverInfo documents the root-finding setup for reproducibility
type SolverInfo struct {
	Method        string  `json:"method"`         // e.g. "brent"
	BracketLow    float64 `json:"bracket_low"`    // Lower bracket temperature (°C)
	BracketHigh   float64 `json:"bracket_high"`   // Upper bracket temperature (°C)
	ToleranceMmHg float64 `json:"tolerance_mmhg"` // Residual acceptance threshold
}

// Series returns the three parallel ordered sequences consumed by plotting
// collaborators: liquid fractions, vapor fractions, temperatures. All three
// have equal length and share index order with Points.
func (r *Report) Series() (xs, ys, ts []float64) {
	xs = make([]float64, len(r.Points))
	ys = make([]float64, len(r.Points))
	ts = make([]float64, len(r.Points))
	for i, p := range r.Points {
		xs[i] = p.X
		ys[i] = p.Y
		ts[i] = p.T
	}
	return xs, ys, ts
}

// LLMNote contains an optional LLM-generated narrative of the dataset.
// CRITICAL: it is generated after the sweep and never feeds back into it.
type LLMNote struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"` // openai, ollama
	Model    string `json:"model,omitempty"`    // Model name
	Text     string `json:"text,omitempty"`     // Markdown narrative
}
