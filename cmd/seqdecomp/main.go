// Command seqdecomp analyzes a YAML-described flowsheet topology: strongly
// connected components, elementary cycles, a minimal tear set, and the
// resulting calculation order.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seqdecomp",
	Short: "Sequential modular decomposition for flowsheet process networks",
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
