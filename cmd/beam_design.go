package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/diagram"
	"github.com/structcalc/isbeam/internal/flexure"
	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/rebar"
	"github.com/structcalc/isbeam/internal/section"
)

var (
	// Geometry inputs (mm)
	designWidth       float64
	designDepth       float64
	designEffDepth    float64
	designCompDepth   float64
	designFlangeWidth float64
	designFlangeDepth float64

	// Materials
	designFck float64
	designFy  float64

	// Loading
	designMu float64

	// Bar arrangement inputs
	designCover      float64
	designStirrupDia float64
	designAggregate  float64

	// Output options
	designJSON        bool
	designShowDiagram bool
	designExportFile  string
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design reinforcement for a factored moment",
	Long: `Calculate the required tension (and, where needed, compression)
reinforcement for a beam section given the factored moment (Mu).

The design follows IS 456:2000 limit state provisions:
  - Cl. 38.1: limiting neutral axis depth and stress block
  - Annex G: rectangular and flanged section formulas
  - SP:16 Table A: stress-strain curve for compression steel

Flanged sections are detected from the flange flags; the neutral axis
position (in flange vs in web) is classified automatically.

Examples:
  # Rectangular 230x500mm beam, M20/Fe415, Mu=100 kN-m
  isbeam beam design --width 230 --depth 500 --eff-depth 450 --fck 20 --fy 415 --mu 100

  # T-beam with a 1000x100mm flange
  isbeam beam design --width 250 --depth 550 --eff-depth 500 \
      --flange-width 1000 --flange-depth 100 --fck 25 --fy 500 --mu 400`,
	Run: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	// Geometry flags
	beamDesignCmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Beam (web) width (mm) [required]")
	beamDesignCmd.Flags().Float64Var(&designDepth, "depth", 0, "Beam overall depth (mm) [required]")
	beamDesignCmd.Flags().Float64VarP(&designEffDepth, "eff-depth", "d", 0, "Effective depth to tension steel (mm) [required]")
	beamDesignCmd.Flags().Float64Var(&designCompDepth, "comp-depth", 50, "Depth to compression steel d' (mm)")
	beamDesignCmd.Flags().Float64Var(&designFlangeWidth, "flange-width", 0, "Flange width bf (mm, flanged sections)")
	beamDesignCmd.Flags().Float64Var(&designFlangeDepth, "flange-depth", 0, "Flange depth Df (mm, flanged sections)")

	// Material flags
	beamDesignCmd.Flags().Float64Var(&designFck, "fck", 20, "Concrete grade fck (N/mm²): 15, 20, 25, 30, 35, 40")
	beamDesignCmd.Flags().Float64Var(&designFy, "fy", 415, "Steel grade fy (N/mm²): 250, 415, 500")

	// Loading flag
	beamDesignCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN·m) [required]")

	// Bar arrangement flags
	beamDesignCmd.Flags().Float64VarP(&designCover, "cover", "c", 40, "Clear cover to stirrup (mm)")
	beamDesignCmd.Flags().Float64Var(&designStirrupDia, "stirrup-dia", 8, "Stirrup diameter (mm)")
	beamDesignCmd.Flags().Float64Var(&designAggregate, "aggregate", 20, "Nominal maximum aggregate size (mm)")

	beamDesignCmd.MarkFlagRequired("width")
	beamDesignCmd.MarkFlagRequired("depth")
	beamDesignCmd.MarkFlagRequired("eff-depth")
	beamDesignCmd.MarkFlagRequired("mu")

	// Output options
	beamDesignCmd.Flags().BoolVar(&designJSON, "json", false, "Print the result as JSON")
	beamDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	beamDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func buildInputs() (section.Section, section.Materials, error) {
	sec := section.Section{
		Width:          designWidth,
		Depth:          designDepth,
		EffectiveDepth: designEffDepth,
		CompSteelDepth: designCompDepth,
		FlangeWidth:    designFlangeWidth,
		FlangeDepth:    designFlangeDepth,
	}
	concrete, err := is456.NewConcreteGrade(designFck)
	if err != nil {
		return sec, section.Materials{}, err
	}
	steel, err := is456.NewSteelGrade(designFy)
	if err != nil {
		return sec, section.Materials{}, err
	}
	return sec, section.Materials{Concrete: concrete, Steel: steel}, nil
}

func runBeamDesign(cmd *cobra.Command, args []string) {
	sec, mat, err := buildInputs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	result, err := flexure.Design(sec, mat, designMu)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if designJSON {
		printJSON(result)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM FLEXURE DESIGN - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (b):\t%.0f mm\n", sec.Width)
	fmt.Fprintf(w, "  Overall Depth (D):\t%.0f mm\n", sec.Depth)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.0f mm\n", sec.EffectiveDepth)
	if sec.Flanged() {
		fmt.Fprintf(w, "  Flange Width (bf):\t%.0f mm\n", sec.FlangeWidth)
		fmt.Fprintf(w, "  Flange Depth (Df):\t%.0f mm\n", sec.FlangeDepth)
	}
	fmt.Fprintf(w, "  Concrete:\tM%d\n", int(mat.Concrete))
	fmt.Fprintf(w, "  Steel:\tFe%d\n", int(mat.Steel))
	fmt.Fprintf(w, "  Factored Moment (Mu):\t%.2f kN·m\n", designMu)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION ANALYSIS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Classification:\t%s\n", result.Class)
	fmt.Fprintf(w, "  Limiting Moment (Mu,lim):\t%.2f kN·m\n", result.MuLim)
	fmt.Fprintf(w, "  Neutral Axis (xu):\t%.2f mm\n", result.Xu)
	fmt.Fprintf(w, "  Limiting Neutral Axis (xu,max):\t%.2f mm\n", result.XuMax)
	if result.AscRequired > 0 {
		fmt.Fprintf(w, "  Compression Steel Strain (ε'sc):\t%.5f\n", result.EpsilonSc)
		fmt.Fprintf(w, "  Compression Steel Stress (fsc):\t%.2f N/mm²\n", result.Fsc)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.Adequate {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Printf("  ║  REQUIRED Ast = %.2f mm²              \n", result.AstRequired)
		if result.AscRequired > 0 {
			fmt.Printf("  ║  REQUIRED Asc = %.2f mm²              \n", result.AscRequired)
		}
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		if result.MinimumGoverns {
			fmt.Println("  Minimum reinforcement (0.85·b·d/fy) governs.")
		}
		fmt.Printf("  Ast,min = %.2f mm², Ast,max = %.2f mm²\n", result.AstMin, result.AstMax)
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN NOT ADEQUATE                    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		for _, reason := range result.Reasons {
			fmt.Printf("  %s\n", reason)
		}
	}
	fmt.Println()

	if result.Adequate {
		printBarArrangement(result.AstRequired)
	}

	if designShowDiagram || designExportFile != "" {
		data := diagram.SectionData{
			Width:        sec.Width,
			Depth:        sec.Depth,
			FlangeWidth:  sec.FlangeWidth,
			FlangeDepth:  sec.FlangeDepth,
			Xu:           result.Xu,
			XuMax:        result.XuMax,
			TensionDepth: sec.EffectiveDepth,
			TensionArea:  result.AstRequired,
			CompDepth:    sec.CompSteelDepth,
			CompArea:     result.AscRequired,
			EpsilonCU:    is456.EpsilonCU,
			EpsilonSc:    result.EpsilonSc,
			BlockStress:  is456.StressBlockForce * mat.Concrete.Fck(),
		}
		if designShowDiagram {
			fmt.Println(diagram.DrawSection(data))
			fmt.Println(diagram.DrawStrain(data))
		}
		if designExportFile != "" {
			if err := diagram.ExportSection(data, designExportFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("Diagram exported to: %s\n", designExportFile)
			}
		}
	}
}

// printBarArrangement runs the arrangement optimizer with the command's
// constructability flags and prints the selected layout.
func printBarArrangement(astRequired float64) {
	layout, infeasible, err := rebar.Optimize(astRequired, rebar.Constraints{
		Width:         designWidth,
		Cover:         designCover,
		StirrupDia:    designStirrupDia,
		AggregateSize: designAggregate,
		AllowedDias:   []float64{12, 16, 20, 25, 28, 32},
		MaxLayers:     2,
		MinBars:       2,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting bars: %v\n", err)
		return
	}

	fmt.Println("BAR ARRANGEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if infeasible != nil {
		fmt.Printf("  No buildable arrangement (%d candidates): %s\n", infeasible.Considered, infeasible.Reason)
		fmt.Println()
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bars:\t%d - φ%.0fmm in %d layer(s)\n", layout.Count, layout.Diameter, layout.Layers)
	fmt.Fprintf(w, "  As Provided:\t%.2f mm²\n", layout.AreaProvided)
	for i, n := range layout.PerLayer {
		fmt.Fprintf(w, "  Layer %d:\t%d bars, clear spacing %.1f mm\n", i+1, n, layout.Spacing[i])
	}
	w.Flush()
	fmt.Println()
}
