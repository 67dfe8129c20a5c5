package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/makhan/raoult/internal/model"
	"github.com/makhan/raoult/internal/pipeline"
	"github.com/makhan/raoult/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// noFooter and the LLM flags are defined in sweep.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Sweep multiple mixtures from a YAML manifest in parallel",
	Long: `Batch computes equilibrium datasets for several mixtures concurrently:
- Read mixture definitions from a YAML manifest
- Sweep mixtures in parallel with configurable worker count
- Each sweep additionally parallelizes its own composition samples
- Generate individual JSON and Markdown reports per mixture

Manifest format:
  mixtures:
    - name: heptane-octane
      first:  {name: heptane, antoine: {a: 6.893,  b: 1260, c: 216}}
      second: {name: octane,  antoine: {a: 6.9094, b: 1351, c: 217}}
      pressure_mmhg: 760
      samples: 21

Example:
  raoult batch mixtures.yaml
  raoult batch mixtures.yaml --concurrency 4 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent sweeps")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./raoult-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

// mixtureJob sweeps one manifest entry on the batch pool
type mixtureJob struct {
	pipe *pipeline.Pipeline
	mix  model.Mixture
}

// mixtureResult is the outcome of one manifest entry
type mixtureResult struct {
	mix    model.Mixture
	report *model.Report
	err    error
}

func (r *mixtureResult) Err() error { return r.err }

func (j *mixtureJob) Execute(ctx context.Context) worker.Result {
	rep, err := j.pipe.Sweep(ctx, j.mix)
	return &mixtureResult{mix: j.mix, report: rep, err: err}
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	mixtures, err := model.LoadMixtures(manifest)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Raoult Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Manifest:     %s\n", manifest)
	fmt.Fprintf(os.Stderr, "  Mixtures:     %d\n", len(mixtures))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pipe := pipeline.NewPipeline(cfg)
	pool := worker.NewPool(concurrency)

	jobs := make([]worker.Job, len(mixtures))
	for i, mix := range mixtures {
		jobs[i] = &mixtureJob{pipe: pipe, mix: mix}
	}

	results, err := pool.Run(ctx, jobs)
	if err != nil {
		return fmt.Errorf("batch aborted: %w", err)
	}

	failed := 0
	for _, r := range results {
		res := r.(*mixtureResult)
		if res.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.mix.Name, res.err)
			continue
		}

		base := filepath.Join(outputDir, slugify(res.report.Mixture.Name))
		if err := pipe.RenderReport(res.report, base+".json", base+".md", verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.mix.Name, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s\n", res.report.Mixture.Name)
	}

	fmt.Fprintf(os.Stderr, "\nCompleted %d/%d mixtures\n", len(mixtures)-failed, len(mixtures))
	if failed > 0 {
		return fmt.Errorf("%d mixture(s) failed", failed)
	}
	return nil
}

// slugify turns a mixture name into a safe file stem
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, slug)
	if slug == "" {
		slug = "mixture"
	}
	return slug
}
