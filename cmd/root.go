package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "isbeam",
	Short: "Reinforced Concrete Beam Design per IS 456:2000",
	Long: `isbeam - IS 456 Beam Designer

A CLI tool for the limit state design of reinforced concrete beams
based on IS 456:2000 (Indian Standard, Plain and Reinforced Concrete).

This tool helps structural engineers perform:
  - Flexural design (singly, doubly and flanged sections)
  - Shear design and stirrup spacing
  - Bar arrangement selection under constructability constraints
  - Multi-case compliance checks with a governing verdict

All calculations follow IS 456:2000 and SP:16 design aids.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   isbeam v%-48s║\n", version.Version)
		fmt.Println("  ║   IS 456:2000 Reinforced Concrete Beam Designer           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the limit state design of reinforced concrete")
		fmt.Println("  beams based on IS 456:2000.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored actions from IS 456 load combinations")
		fmt.Println("    • Singly, doubly and flanged flexure design")
		fmt.Println("    • Shear design with Table 19/20 strengths")
		fmt.Println("    • Buildable bar arrangement optimization")
		fmt.Println("    • Multi-case compliance checks and batch runs")
		fmt.Println()
		fmt.Println("  Use 'isbeam --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// printJSON writes a result structure as indented JSON for downstream
// formatters. Every field of a result is always present.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
