package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/diagram"
	"github.com/structcalc/isbeam/internal/is456"
)

var steelCurveFy float64

var steelCurveCmd = &cobra.Command{
	Use:   "steelcurve",
	Short: "Plot the design stress-strain curve for a steel grade",
	Long: `Plot the SP:16 design stress-strain curve for a reinforcement grade.

Cold-worked bars (Fe415, Fe500) follow tabulated inelastic strain
offsets between 0.8·fd and fd = 0.87·fy; mild steel (Fe250) is
elastic-perfectly-plastic. This is the curve the doubly reinforced
design uses for compression steel stress.

Example:
  isbeam steelcurve --fy 500`,
	Run: runSteelCurve,
}

func init() {
	rootCmd.AddCommand(steelCurveCmd)
	steelCurveCmd.Flags().Float64Var(&steelCurveFy, "fy", 415, "Steel grade fy (N/mm²): 250, 415, 500")
}

func runSteelCurve(cmd *cobra.Command, args []string) {
	steel, err := is456.NewSteelGrade(steelCurveFy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	graph, err := diagram.DrawSteelCurve(steel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println()
	fmt.Println(graph)
	fmt.Println()
}
