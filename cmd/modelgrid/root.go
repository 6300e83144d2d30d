// Root command for the modelgrid CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/modelgrid/modelgrid/internal/paths"
	"github.com/modelgrid/modelgrid/pkg/modelgrid"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks a failure of the environment rather than the invocation,
// so main can exit with exitSysError instead of exitUserError.
type sysError struct{ err error }

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

func sysErr(err error) error { return sysError{err: err} }

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagModel     string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE.
var (
	configDataDir   string
	configModelPath string
)

var rootCmd = &cobra.Command{
	Use:     "modelgrid",
	Short:   "Modelgrid resolves and inspects schema-driven object models",
	Version: modelgrid.Version,
	// Errors are reported once by main with the mapped exit code.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return sysErr(err)
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return sysErr(err)
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configModelPath = cfg.GetString(cfgKeyModelPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.modelgrid-db)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "model manifest file (overrides the stored model)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(assignableCmd)
	rootCmd.AddCommand(instanceofCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > MODELGRID_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > MODELGRID_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
