// Package cli defines the root Cobra command and global flag/context setup.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kepler-cli/kepler/internal/cli/commands"
	"github.com/kepler-cli/kepler/internal/core/config"
	"github.com/kepler-cli/kepler/internal/core/logger"
	"github.com/kepler-cli/kepler/pkg/pprint"
)

// globalFlags holds values bound to persistent global flags.
var globalFlags struct {
	configFile string
	debug      bool
	jsonOutput bool
}

// rootCmd is the base command for kepler.
var rootCmd = &cobra.Command{
	Use:           "kepler",
	Short:         "Kepler — orbital periods and velocities from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Bare `kepler` is not an error: print the notice and exit 0.
		fmt.Println("No commands provided")
		pprint.Info("run `kepler earth` for the default report, or `kepler --help`")
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}
		return initRuntime(cmd)
	},
}

// Execute runs the CLI. Called by main().
func Execute() {
	// Show banner before every help screen
	origHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		pprint.PrintBanner(commands.Version, commands.BuildDate)
		origHelp(cmd, args)
	})

	if err := rootCmd.Execute(); err != nil {
		pprint.Error("%s", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.configFile, "config", "c", "", "Path to kepler.yaml (defaults to auto-discovery)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.jsonOutput, "json", false, "Output version info in machine-readable JSON")

	// Register all subcommands
	rootCmd.AddCommand(
		commands.NewEarthCmd(),
		commands.NewVersionCmd(),
	)
}

// initRuntime loads config and logger before each command runs.
func initRuntime(cmd *cobra.Command) error {
	cfg, err := config.Load(globalFlags.configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.File, globalFlags.debug)
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}

	cmd.SetContext(commands.NewContext(cmd.Context(), &commands.Runtime{
		Config: cfg,
		Log:    log,
		Flags: commands.GlobalFlags{
			Debug:      globalFlags.debug,
			JSONOutput: globalFlags.jsonOutput,
		},
	}))

	return nil
}
