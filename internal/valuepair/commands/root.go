// Package commands implements the valuepair CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/samestrin/valuepair-fixture/internal/valuepair/config"
)

// Version is set at build time using ldflags
var Version = "1.0.0"

// Global output flags, synced in PersistentPreRunE so main can format errors
// the way the failing command would have formatted its result.
var (
	GlobalJSONOutput bool
	GlobalMinOutput  bool
)

// rootOptions holds the persistent flags and the loaded config for one
// command tree.
type rootOptions struct {
	json       bool
	min        bool
	configPath string
	cfg        *config.Config
}

var rootCmd = newRootCmd()

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "valuepair",
		Short: "ValuePair fixture for language-tooling tests",
		Long: `valuepair exposes the ValuePair fixture: a two-field numeric type with
an add operation, a fixed print operation, and a deliberately incomplete
method used to give language tooling a known syntax error.

Negative operands must follow "--":
  valuepair add -- -1 1`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDefault(o.configPath)
			if err != nil {
				return err
			}
			o.cfg = cfg

			if f := cmd.Flag("json"); f == nil || !f.Changed {
				o.json = cfg.JSON
			}
			if f := cmd.Flag("min"); f == nil || !f.Changed {
				o.min = cfg.Min
			}
			GlobalJSONOutput = o.json
			GlobalMinOutput = o.min
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&o.json, "json", false, "Output as JSON")
	cmd.PersistentFlags().BoolVar(&o.min, "min", false, "Minimal/token-optimized output")
	cmd.PersistentFlags().StringVar(&o.configPath, "config", "", "Config file (.yaml, .yml, .toml); defaults to $"+config.EnvConfigPath)

	cmd.AddCommand(newAddCmd(o))
	cmd.AddCommand(newPrintValuesCmd(o))
	cmd.AddCommand(newFixtureCmd(o))
	cmd.AddCommand(newBatchCmd(o))

	return cmd
}
