package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/flexure"
	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
)

var (
	capWidth     float64
	capDepth     float64
	capEffDepth  float64
	capCompDepth float64
	capFck       float64
	capFy        float64
	capAst       float64
	capAsc       float64
	capJSON      bool
)

var beamCapacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Calculate moment capacity for provided reinforcement",
	Long: `Calculate the ultimate moment capacity of a rectangular beam with
provided tension (and optional compression) reinforcement.

If the provided steel pushes the neutral axis beyond xu,max the section
is over-reinforced and the capacity is reported at the limiting depth.

Examples:
  isbeam beam capacity --width 230 --depth 500 --eff-depth 450 --fck 20 --fy 415 --ast 804
  isbeam beam capacity --width 300 --depth 550 --eff-depth 500 --comp-depth 50 \
      --fck 25 --fy 500 --ast 1964 --asc 603`,
	Run: runBeamCapacity,
}

func init() {
	beamCmd.AddCommand(beamCapacityCmd)

	beamCapacityCmd.Flags().Float64VarP(&capWidth, "width", "b", 0, "Beam width (mm) [required]")
	beamCapacityCmd.Flags().Float64Var(&capDepth, "depth", 0, "Beam overall depth (mm) [required]")
	beamCapacityCmd.Flags().Float64VarP(&capEffDepth, "eff-depth", "d", 0, "Effective depth (mm) [required]")
	beamCapacityCmd.Flags().Float64Var(&capCompDepth, "comp-depth", 0, "Depth to compression steel d' (mm)")
	beamCapacityCmd.Flags().Float64Var(&capFck, "fck", 20, "Concrete grade fck (N/mm²)")
	beamCapacityCmd.Flags().Float64Var(&capFy, "fy", 415, "Steel grade fy (N/mm²)")
	beamCapacityCmd.Flags().Float64Var(&capAst, "ast", 0, "Provided tension steel (mm²) [required]")
	beamCapacityCmd.Flags().Float64Var(&capAsc, "asc", 0, "Provided compression steel (mm²)")
	beamCapacityCmd.Flags().BoolVar(&capJSON, "json", false, "Print the result as JSON")

	beamCapacityCmd.MarkFlagRequired("width")
	beamCapacityCmd.MarkFlagRequired("depth")
	beamCapacityCmd.MarkFlagRequired("eff-depth")
	beamCapacityCmd.MarkFlagRequired("ast")
}

func runBeamCapacity(cmd *cobra.Command, args []string) {
	concrete, err := is456.NewConcreteGrade(capFck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	steel, err := is456.NewSteelGrade(capFy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	sec := section.Section{
		Width:          capWidth,
		Depth:          capDepth,
		EffectiveDepth: capEffDepth,
		CompSteelDepth: capCompDepth,
	}
	mat := section.Materials{Concrete: concrete, Steel: steel}

	result, err := flexure.Capacity(sec, mat, capAst, capAsc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if capJSON {
		printJSON(result)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM MOMENT CAPACITY - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Neutral Axis (xu):\t%.2f mm\n", result.Xu)
	fmt.Fprintf(w, "  Limiting Neutral Axis (xu,max):\t%.2f mm\n", result.XuMax)
	if capAsc > 0 {
		fmt.Fprintf(w, "  Compression Steel Stress (fsc):\t%.2f N/mm²\n", result.Fsc)
	}
	fmt.Fprintf(w, "  Moment Capacity (Mu):\t%.2f kN·m\n", result.Mu)
	w.Flush()
	fmt.Println()
	if result.OverReinforced {
		fmt.Println("  WARNING: Section is over-reinforced; capacity reported at xu,max.")
		fmt.Println()
	}
}
