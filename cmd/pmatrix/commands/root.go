package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pmatrix",
	Short: "P-MATRIX runtime state reference encoder",
	Long: `pmatrix is the P-MATRIX runtime state reference encoder - a schema
conformance tool, not an execution engine.

It emits demonstration runtime state records from four evaluation function
values, validates externally supplied records against all twelve conformance
invariants, and checks temporal ordering across record streams.

The score aggregation used by 'emit' is demonstration logic only; production
P-MATRIX deployments use proprietary evaluation pipelines.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
