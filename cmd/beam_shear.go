package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
	"github.com/structcalc/isbeam/internal/shear"
)

var (
	shearWidth    float64
	shearDepth    float64
	shearEffDepth float64
	shearFck      float64
	shearFy       float64
	shearVu       float64
	shearPt       float64
	shearAsv      float64
	shearJSON     bool
)

var beamShearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Design stirrup spacing for a factored shear",
	Long: `Calculate the required vertical stirrup spacing for a beam given
the factored shear force (Vu) and the provided tension steel percentage.

The design follows IS 456:2000 Cl. 40:
  - Table 19: design shear strength of concrete τc
  - Table 20: maximum shear stress τc,max (fatal when exceeded)
  - Cl. 26.5.1.5/26.5.1.6: spacing caps and minimum stirrups

The tension steel percentage must reflect the bars actually provided,
since τc depends on the chosen layout.

Examples:
  isbeam beam shear --width 230 --depth 500 --eff-depth 450 --fck 20 --fy 415 \
      --vu 150 --pt 1.0 --asv 100`,
	Run: runBeamShear,
}

func init() {
	beamCmd.AddCommand(beamShearCmd)

	beamShearCmd.Flags().Float64VarP(&shearWidth, "width", "b", 0, "Beam (web) width (mm) [required]")
	beamShearCmd.Flags().Float64Var(&shearDepth, "depth", 0, "Beam overall depth (mm) [required]")
	beamShearCmd.Flags().Float64VarP(&shearEffDepth, "eff-depth", "d", 0, "Effective depth (mm) [required]")
	beamShearCmd.Flags().Float64Var(&shearFck, "fck", 20, "Concrete grade fck (N/mm²)")
	beamShearCmd.Flags().Float64Var(&shearFy, "fy", 415, "Stirrup steel grade fy (N/mm²)")
	beamShearCmd.Flags().Float64VarP(&shearVu, "vu", "v", 0, "Factored shear Vu (kN) [required]")
	beamShearCmd.Flags().Float64Var(&shearPt, "pt", 0, "Provided tension steel percentage 100·Ast/(b·d) [required]")
	beamShearCmd.Flags().Float64Var(&shearAsv, "asv", 100.5, "Total stirrup leg area Asv (mm²)")
	beamShearCmd.Flags().BoolVar(&shearJSON, "json", false, "Print the result as JSON")

	beamShearCmd.MarkFlagRequired("width")
	beamShearCmd.MarkFlagRequired("depth")
	beamShearCmd.MarkFlagRequired("eff-depth")
	beamShearCmd.MarkFlagRequired("vu")
	beamShearCmd.MarkFlagRequired("pt")
}

func runBeamShear(cmd *cobra.Command, args []string) {
	concrete, err := is456.NewConcreteGrade(shearFck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	steel, err := is456.NewSteelGrade(shearFy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	sec := section.Section{Width: shearWidth, Depth: shearDepth, EffectiveDepth: shearEffDepth}
	mat := section.Materials{Concrete: concrete, Steel: steel}
	st := shear.Stirrup{Area: shearAsv, Steel: steel}

	result, err := shear.Design(sec, mat, shearVu, shearPt, st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if shearJSON {
		printJSON(result)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM SHEAR DESIGN - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Shear Stress (τv):\t%.3f N/mm²\n", result.TauV)
	fmt.Fprintf(w, "  Design Shear Strength (τc):\t%.3f N/mm²\n", result.TauC)
	fmt.Fprintf(w, "  Maximum Shear Stress (τc,max):\t%.3f N/mm²\n", result.TauCMax)
	if result.Vus > 0 {
		fmt.Fprintf(w, "  Shear Carried by Stirrups (Vus):\t%.2f kN\n", result.Vus)
	}
	w.Flush()
	fmt.Println()

	if result.SectionInadequate {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  SECTION INADEQUATE IN SHEAR            ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		for _, reason := range result.Reasons {
			fmt.Printf("  %s\n", reason)
		}
		fmt.Println("  No stirrup spacing can remedy this; increase the section size.")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Printf("  ║  STIRRUP SPACING = %.0f mm              \n", result.Spacing)
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  Governed by: %s\n", result.Governs)
		if result.MinimumStirrups {
			fmt.Println("  Concrete carries the shear; minimum stirrups provided.")
		}
	}
	fmt.Println()
}
