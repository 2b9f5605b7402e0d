// Command taperplan generates and inspects dosage-reduction plans.
//
// Usage:
//
//	taperplan generate --current 2.0 --goal 0.5 [constraint flags] [-o plan.yaml]
//	taperplan schedule --plan plan.yaml --start 2026-09-01
//	taperplan show --plan plan.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taperplan",
	Short: "Deterministic dosage-reduction planning",
	Long: `taperplan computes a monotonically decreasing taper from a starting
daily dose to a goal dose, bounded by optional constraints on step size,
cycle length, step count and total duration. Unmet constraints are reported,
never silently dropped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
