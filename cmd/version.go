package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structcalc/isbeam/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of isbeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("isbeam v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Beam Design Tool")
		fmt.Println("Based on IS 456:2000 (Plain and Reinforced Concrete - Code of Practice)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
