package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/rebar"
)

var (
	rebarAst        float64
	rebarWidth      float64
	rebarCover      float64
	rebarStirrupDia float64
	rebarAggregate  float64
	rebarDias       []float64
	rebarMaxLayers  int
	rebarMinBars    int
	rebarMaxBars    int
	rebarJSON       bool
)

var rebarCmd = &cobra.Command{
	Use:   "rebar",
	Short: "Select a buildable bar arrangement for a required steel area",
	Long: `Search diameter, count and layer combinations for the best buildable
bar arrangement providing at least the required steel area.

Candidates must satisfy the horizontal clear spacing rule (Cl. 26.3.2:
not less than the bar diameter nor aggregate size + 5 mm). Among the
feasible candidates the selection minimizes, in order: provided area,
layer count, bar count, bar diameter - so the result is deterministic.

Examples:
  isbeam rebar --ast 900 --width 300 --cover 40 --stirrup-dia 8
  isbeam rebar --ast 2400 --width 250 --dias 16,20,25 --max-layers 3`,
	Run: runRebar,
}

func init() {
	rootCmd.AddCommand(rebarCmd)

	rebarCmd.Flags().Float64Var(&rebarAst, "ast", 0, "Required steel area (mm²) [required]")
	rebarCmd.Flags().Float64VarP(&rebarWidth, "width", "b", 0, "Section width (mm) [required]")
	rebarCmd.Flags().Float64VarP(&rebarCover, "cover", "c", 40, "Clear cover to stirrup (mm)")
	rebarCmd.Flags().Float64Var(&rebarStirrupDia, "stirrup-dia", 8, "Stirrup diameter (mm)")
	rebarCmd.Flags().Float64Var(&rebarAggregate, "aggregate", 20, "Nominal maximum aggregate size (mm)")
	rebarCmd.Flags().Float64SliceVar(&rebarDias, "dias", []float64{12, 16, 20, 25}, "Allowed bar diameters (mm)")
	rebarCmd.Flags().IntVar(&rebarMaxLayers, "max-layers", 2, "Maximum reinforcement layers")
	rebarCmd.Flags().IntVar(&rebarMinBars, "min-bars", 2, "Minimum total bars")
	rebarCmd.Flags().IntVar(&rebarMaxBars, "max-bars", 0, "Bar count ceiling (0 = default)")
	rebarCmd.Flags().BoolVar(&rebarJSON, "json", false, "Print the result as JSON")

	rebarCmd.MarkFlagRequired("ast")
	rebarCmd.MarkFlagRequired("width")
}

func runRebar(cmd *cobra.Command, args []string) {
	layout, infeasible, err := rebar.Optimize(rebarAst, rebar.Constraints{
		Width:         rebarWidth,
		Cover:         rebarCover,
		StirrupDia:    rebarStirrupDia,
		AggregateSize: rebarAggregate,
		AllowedDias:   rebarDias,
		MaxLayers:     rebarMaxLayers,
		MinBars:       rebarMinBars,
		MaxBars:       rebarMaxBars,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if rebarJSON {
		if infeasible != nil {
			printJSON(infeasible)
		} else {
			printJSON(layout)
		}
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BAR ARRANGEMENT - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if infeasible != nil {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  NO BUILDABLE ARRANGEMENT               ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  Candidates considered: %d\n", infeasible.Considered)
		fmt.Printf("  %s\n", infeasible.Reason)
		fmt.Println()
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Selected:\t%d - φ%.0fmm in %d layer(s)\n", layout.Count, layout.Diameter, layout.Layers)
	fmt.Fprintf(w, "  As Provided:\t%.2f mm² (required %.2f mm²)\n", layout.AreaProvided, rebarAst)
	for i, n := range layout.PerLayer {
		fmt.Fprintf(w, "  Layer %d:\t%d bars, clear spacing %.1f mm\n", i+1, n, layout.Spacing[i])
	}
	w.Flush()
	fmt.Println()
}
