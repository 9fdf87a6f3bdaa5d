package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam flexure, shear and compliance per IS 456",
	Long: `Design and check reinforced concrete beams based on IS 456:2000
limit state provisions.

Subcommands:
  design    - Calculate required reinforcement for a factored moment
  capacity  - Calculate moment capacity for provided reinforcement
  shear     - Design stirrup spacing for a factored shear
  check     - Check a section against multiple load cases`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
