package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/makhan/raoult/internal/model"
	"github.com/makhan/raoult/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	mixtureFile string
	pressure    float64
	samples     int
	tolerance   float64
	workers     int
	outJSON     string
	outMD       string
	sweepWait   time.Duration
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep [first-species] [second-species]",
	Short: "Compute the T-x-y / x-y dataset for a binary mixture",
	Long: `Sweep computes the vapor-liquid equilibrium table for one binary mixture:
- Solve the bubble-point temperature for each liquid composition
- Derive the equilibrium vapor composition at each solved temperature
- Report failed samples individually; one bad sample never aborts the rest

The mixture comes from, in order of precedence: a --mixture YAML file, two
builtin species names given as arguments, or the reference heptane-octane
system.

Example:
  raoult sweep
  raoult sweep benzene toluene --pressure 760 --samples 41
  raoult sweep --mixture mix.yaml --json data.json --md data.md
  raoult sweep --llm --llm-provider openai`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	// System flags
	sweepCmd.Flags().StringVar(&mixtureFile, "mixture", "", "mixture definition YAML file")
	sweepCmd.Flags().Float64Var(&pressure, "pressure", 760, "total pressure in mmHg")
	sweepCmd.Flags().IntVar(&samples, "samples", 21, "composition grid size (includes both endpoints)")

	// Solver flags
	sweepCmd.Flags().Float64Var(&tolerance, "tolerance", 1e-6, "residual acceptance tolerance in mmHg")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "sweep worker goroutines (0 = all CPUs)")
	sweepCmd.Flags().DurationVar(&sweepWait, "timeout", time.Minute, "overall run timeout")

	// Output flags
	sweepCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	sweepCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	sweepCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable boiling-point caching")
	sweepCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	sweepCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	sweepCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	sweepCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")

	// Bind tunables to viper so the file/env hierarchy applies beneath flags
	_ = viper.BindPFlag("pressure_mmhg", sweepCmd.Flags().Lookup("pressure"))
	_ = viper.BindPFlag("samples", sweepCmd.Flags().Lookup("samples"))
	_ = viper.BindPFlag("solver.tolerance_mmhg", sweepCmd.Flags().Lookup("tolerance"))
	_ = viper.BindPFlag("concurrency.workers", sweepCmd.Flags().Lookup("workers"))
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sweepWait)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	mix, err := resolveMixture(args, cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Mixture: %s\n", mix.Name)
		fmt.Fprintf(os.Stderr, "Pressure: %g mmHg\n", mix.PressureMmHg)
		fmt.Fprintf(os.Stderr, "Samples: %d\n", mix.Samples)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	rep, err := p.Sweep(ctx, mix)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Solved %d of %d samples\n", len(rep.Points), len(rep.Points)+len(rep.Failures))
		if rep.LLM != nil && rep.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated narrative using %s/%s\n", rep.LLM.Provider, rep.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(rep, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the run configuration from defaults, the config
// file/environment (via viper), and command flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	// Tunables flow through viper: flags > RAOULT_* env > config file >
	// flag defaults
	cfg.PressureMmHg = viper.GetFloat64("pressure_mmhg")
	cfg.Samples = viper.GetInt("samples")
	cfg.Solver.ToleranceMmHg = viper.GetFloat64("solver.tolerance_mmhg")
	if w := viper.GetInt("concurrency.workers"); w > 0 {
		cfg.Concurrency.Workers = w
	}
	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}

	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	} else {
		cfg.LLM.Provider = ""
	}

	return cfg, nil
}

// resolveMixture picks the system to sweep: explicit file, two builtin
// species, or the reference default
func resolveMixture(args []string, cfg *model.Config) (model.Mixture, error) {
	if mixtureFile != "" {
		if len(args) > 0 {
			return model.Mixture{}, fmt.Errorf("give either --mixture or species names, not both")
		}
		return model.LoadMixture(mixtureFile)
	}

	switch len(args) {
	case 0:
		mix := model.DefaultMixture()
		mix.PressureMmHg = cfg.PressureMmHg
		mix.Samples = cfg.Samples
		return mix, nil
	case 2:
		first, err := model.LookupSpecies(args[0])
		if err != nil {
			return model.Mixture{}, err
		}
		second, err := model.LookupSpecies(args[1])
		if err != nil {
			return model.Mixture{}, err
		}
		return model.Mixture{
			Name:         first.Name + "-" + second.Name,
			First:        first,
			Second:       second,
			PressureMmHg: cfg.PressureMmHg,
			Samples:      cfg.Samples,
		}, nil
	default:
		return model.Mixture{}, fmt.Errorf("need exactly two species names, got %d", len(args))
	}
}
