package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dyluth/pmatrix/internal/config"
	"github.com/dyluth/pmatrix/internal/printer"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a pmatrix.yml configuration file",
	Long: `Scaffold a pmatrix.yml configuration file in the current directory.

The generated file carries a freshly generated emitter UUID and default Redis
connection settings for the stream store commands (push, audit).

Examples:
  pmatrix init
  pmatrix init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing pmatrix.yml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(config.DefaultPath); err == nil && !initForce {
		return printer.Error(
			"pmatrix.yml already exists",
			"An existing configuration was found in the current directory.",
			[]string{"Re-run with --force to overwrite it."},
		)
	}

	cfg := config.Default()
	if err := cfg.Save(config.DefaultPath); err != nil {
		return err
	}

	printer.Success("created %s (emitter %s)\n", config.DefaultPath, cfg.Emitter.ID)
	return nil
}
