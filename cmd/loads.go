package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/is456"
)

var (
	// Unfactored actions: moment (kN·m) and shear (kN) per load type
	loadsDeadM, loadsDeadV float64
	loadsLiveM, loadsLiveV float64
	loadsWindM, loadsWindV float64
	loadsEqM, loadsEqV     float64

	loadsShowAll bool
	loadsGravity bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate factored actions using IS 456 load combinations",
	Long: `Calculate the factored moment (Mu) and shear (Vu) from unfactored
actions using the IS 456:2000 Table 18 load combinations for the limit
state of collapse.

Load Types:
  DL - Dead load
  IL - Imposed (live) load
  WL - Wind load
  EL - Earthquake load

Examples:
  # Gravity loads only
  isbeam loads --dead-m 50 --dead-v 60 --live-m 30 --live-v 35

  # With earthquake actions, showing every combination
  isbeam loads --dead-m 50 --live-m 30 --eq-m 40 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsCmd.Flags().Float64Var(&loadsDeadM, "dead-m", 0, "Dead load moment (kN·m)")
	loadsCmd.Flags().Float64Var(&loadsDeadV, "dead-v", 0, "Dead load shear (kN)")
	loadsCmd.Flags().Float64Var(&loadsLiveM, "live-m", 0, "Imposed load moment (kN·m)")
	loadsCmd.Flags().Float64Var(&loadsLiveV, "live-v", 0, "Imposed load shear (kN)")
	loadsCmd.Flags().Float64Var(&loadsWindM, "wind-m", 0, "Wind load moment (kN·m)")
	loadsCmd.Flags().Float64Var(&loadsWindV, "wind-v", 0, "Wind load shear (kN)")
	loadsCmd.Flags().Float64Var(&loadsEqM, "eq-m", 0, "Earthquake load moment (kN·m)")
	loadsCmd.Flags().Float64Var(&loadsEqV, "eq-v", 0, "Earthquake load shear (kN)")

	loadsCmd.Flags().BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadsGravity, "gravity", "g", false, "Use the gravity-only combination 1.5(DL+IL)")
}

func runLoads(cmd *cobra.Command, args []string) {
	actions := is456.LoadActions{
		Dead:       is456.Action{Moment: loadsDeadM, Shear: loadsDeadV},
		Live:       is456.Action{Moment: loadsLiveM, Shear: loadsLiveV},
		Wind:       is456.Action{Moment: loadsWindM, Shear: loadsWindV},
		Earthquake: is456.Action{Moment: loadsEqM, Shear: loadsEqV},
	}

	if actions == (is456.LoadActions{}) {
		fmt.Println("Error: Please provide at least one unfactored action.")
		fmt.Println("Use 'isbeam loads --help' for usage information.")
		return
	}

	combos := is456.Combinations
	if loadsGravity {
		combos = is456.GravityCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          IS 456:2000 FACTORED ACTIONS (TABLE 18)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if loadsShowAll {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Combination\tMu (kN·m)\tVu (kN)\n")
		fmt.Fprintf(w, "  ───────────\t─────────\t───────\n")
		for _, combo := range combos {
			mu, vu := combo.Factored(actions)
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", combo.Description, mu, vu)
		}
		w.Flush()
		fmt.Println()
	}

	mu, vu, governing := is456.Governing(actions, combos)
	fmt.Println("  ╔═════════════════════════════════════════╗")
	fmt.Printf("  ║  Mu = %.2f kN·m, Vu = %.2f kN       \n", mu, vu)
	fmt.Println("  ╚═════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("  Governing combination: %s\n", governing.Description)
	fmt.Println()
}
