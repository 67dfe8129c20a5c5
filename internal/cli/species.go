package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/makhan/raoult/internal/antoine"
	"github.com/makhan/raoult/internal/model"
	"github.com/spf13/cobra"
)

var speciesPressure float64

// speciesCmd represents the species command
var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List the builtin Antoine constant table",
	Long: `Display the builtin species and their Antoine constants (°C/mmHg form),
along with each species' boiling point at the given pressure.`,
	RunE: runSpecies,
}

func init() {
	rootCmd.AddCommand(speciesCmd)

	speciesCmd.Flags().Float64Var(&speciesPressure, "pressure", 760, "pressure (mmHg) for the boiling point column")
}

func runSpecies(cmd *cobra.Command, args []string) error {
	if speciesPressure <= 0 {
		return fmt.Errorf("pressure must be positive, got %g", speciesPressure)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "SPECIES\tA\tB\tC\tTb @ %g mmHg\n", speciesPressure)
	for _, name := range model.SpeciesNames() {
		comp, err := model.LookupSpecies(name)
		if err != nil {
			return err
		}
		tb := antoine.BoilingPoint(comp.Antoine, speciesPressure)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%.2f °C\n", comp.Name, comp.Antoine.A, comp.Antoine.B, comp.Antoine.C, tb)
	}
	return w.Flush()
}
