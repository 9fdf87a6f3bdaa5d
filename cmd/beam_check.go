package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/compliance"
	"github.com/structcalc/isbeam/internal/is456"
	"github.com/structcalc/isbeam/internal/section"
	"github.com/structcalc/isbeam/internal/shear"
)

var (
	checkWidth       float64
	checkDepth       float64
	checkEffDepth    float64
	checkCompDepth   float64
	checkFlangeWidth float64
	checkFlangeDepth float64
	checkFck         float64
	checkFy          float64
	checkCases       []string
	checkAsv         float64
	checkPt          float64
	checkFile        string
	checkBatchFile   string
	checkJSON        bool
)

var beamCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a section against multiple load cases",
	Long: `Run flexure and shear design for every load case and aggregate the
results into a single governing verdict.

Cases can be given inline as repeated --case flags (id:mu:vu) or loaded
from a JSON job file. A JSON array of jobs runs as a batch; jobs are
independent and one failing job never aborts the rest.

Examples:
  # Two inline cases
  isbeam beam check --width 230 --depth 500 --eff-depth 450 --fck 20 --fy 415 \
      --case "DL+LL:100:120" --case "DL+EL:85:150"

  # A job file
  isbeam beam check --file beam-b12.json

  # A batch of jobs
  isbeam beam check --batch floor-beams.json --json`,
	Run: runBeamCheck,
}

func init() {
	beamCmd.AddCommand(beamCheckCmd)

	beamCheckCmd.Flags().Float64VarP(&checkWidth, "width", "b", 0, "Beam (web) width (mm)")
	beamCheckCmd.Flags().Float64Var(&checkDepth, "depth", 0, "Beam overall depth (mm)")
	beamCheckCmd.Flags().Float64VarP(&checkEffDepth, "eff-depth", "d", 0, "Effective depth (mm)")
	beamCheckCmd.Flags().Float64Var(&checkCompDepth, "comp-depth", 50, "Depth to compression steel d' (mm)")
	beamCheckCmd.Flags().Float64Var(&checkFlangeWidth, "flange-width", 0, "Flange width bf (mm)")
	beamCheckCmd.Flags().Float64Var(&checkFlangeDepth, "flange-depth", 0, "Flange depth Df (mm)")
	beamCheckCmd.Flags().Float64Var(&checkFck, "fck", 20, "Concrete grade fck (N/mm²)")
	beamCheckCmd.Flags().Float64Var(&checkFy, "fy", 415, "Steel grade fy (N/mm²)")
	beamCheckCmd.Flags().StringArrayVar(&checkCases, "case", nil, "Load case as id:mu:vu (repeatable)")
	beamCheckCmd.Flags().Float64Var(&checkAsv, "asv", 100.5, "Total stirrup leg area Asv (mm²)")
	beamCheckCmd.Flags().Float64Var(&checkPt, "pt", 0, "Provided tension steel percentage (0 = assume required)")
	beamCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path to a job JSON file")
	beamCheckCmd.Flags().StringVar(&checkBatchFile, "batch", "", "Path to a JSON array of jobs")
	beamCheckCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the report as JSON")
}

// parseCase parses an inline "id:mu:vu" case definition.
func parseCase(s string) (section.DesignCase, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return section.DesignCase{}, fmt.Errorf("case %q must be id:mu:vu", s)
	}
	mu, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return section.DesignCase{}, fmt.Errorf("case %q: bad moment: %v", s, err)
	}
	vu, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return section.DesignCase{}, fmt.Errorf("case %q: bad shear: %v", s, err)
	}
	return section.DesignCase{ID: parts[0], Mu: mu, Vu: vu}, nil
}

func runBeamCheck(cmd *cobra.Command, args []string) {
	opts := complianceOptions()

	if checkBatchFile != "" {
		jobs, err := section.LoadBatch(checkBatchFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading batch: %v\n", err)
			return
		}
		results := compliance.RunBatch(context.Background(), jobs, opts)
		if checkJSON {
			printJSON(results)
			return
		}
		for _, jr := range results {
			printJobResult(jr)
		}
		return
	}

	var job *section.Job
	if checkFile != "" {
		loaded, err := section.LoadJob(checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading job: %v\n", err)
			return
		}
		job = loaded
	} else {
		built, err := buildCheckJob()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		job = built
	}

	report, err := compliance.Check(job.Section, job.Materials, job.Cases, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if checkJSON {
		printJSON(report)
		return
	}
	printJobResult(compliance.JobResult{Name: job.Name, Report: report})
}

func complianceOptions() compliance.Options {
	return compliance.Options{
		Stirrup:           shear.Stirrup{Area: checkAsv, Steel: is456.Fe415},
		TensionSteelRatio: checkPt,
	}
}

func buildCheckJob() (*section.Job, error) {
	if len(checkCases) == 0 {
		return nil, fmt.Errorf("provide at least one --case (or a --file/--batch)")
	}
	concrete, err := is456.NewConcreteGrade(checkFck)
	if err != nil {
		return nil, err
	}
	steel, err := is456.NewSteelGrade(checkFy)
	if err != nil {
		return nil, err
	}
	job := &section.Job{
		Section: section.Section{
			Width:          checkWidth,
			Depth:          checkDepth,
			EffectiveDepth: checkEffDepth,
			CompSteelDepth: checkCompDepth,
			FlangeWidth:    checkFlangeWidth,
			FlangeDepth:    checkFlangeDepth,
		},
		Materials: section.Materials{Concrete: concrete, Steel: steel},
	}
	for _, s := range checkCases {
		dc, err := parseCase(s)
		if err != nil {
			return nil, err
		}
		job.Cases = append(job.Cases, dc)
	}
	return job, nil
}

func printJobResult(jr compliance.JobResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	if jr.Name != "" {
		fmt.Printf("     COMPLIANCE CHECK - %s\n", jr.Name)
	} else {
		fmt.Println("     COMPLIANCE CHECK - IS 456:2000")
	}
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if jr.Err != "" {
		fmt.Printf("  ERROR: %s\n\n", jr.Err)
		return
	}
	report := jr.Report

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Case\tClass\tAst req\tτv\tSpacing\tUtil\tStatus\n")
	fmt.Fprintf(w, "  ────\t─────\t───────\t──\t───────\t────\t──────\n")
	for _, cr := range report.Cases {
		status := "PASS"
		if !cr.Pass {
			status = "FAIL"
		}
		if cr.Flexure == nil || cr.Shear == nil {
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\t-\t%s\n", cr.Case.ID, status)
			continue
		}
		spacing := fmt.Sprintf("%.0f", cr.Shear.Spacing)
		if cr.Shear.SectionInadequate {
			spacing = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.3f\t%s\t%.2f\t%s\n",
			cr.Case.ID, cr.Flexure.Class, cr.Flexure.AstRequired, cr.Shear.TauV, spacing, cr.Utilization, status)
	}
	w.Flush()
	fmt.Println()

	if report.Pass {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  ALL LOAD CASES PASS                    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  COMPLIANCE CHECK FAILED                ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
	fmt.Printf("  Governing case: %s (utilization %.2f)\n", report.GoverningCase, report.Utilization)
	for _, reason := range report.Reasons {
		fmt.Printf("  %s\n", reason)
	}
	fmt.Println()
}
