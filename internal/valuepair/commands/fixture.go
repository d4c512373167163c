package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
	"github.com/samestrin/valuepair-fixture/internal/valuepair/config"
	"github.com/samestrin/valuepair-fixture/internal/valuepair/fixture"
	"github.com/samestrin/valuepair-fixture/pkg/linediff"
	"github.com/samestrin/valuepair-fixture/pkg/output"
)

// fixtureFlags are shared by the render, write and diff subcommands.
type fixtureFlags struct {
	language      string
	pkg           string
	typeName      string
	noPlaceholder bool
}

func (ff *fixtureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.language, "language", "", "Fixture language: go, python")
	cmd.Flags().StringVar(&ff.pkg, "package", "", "Go package name")
	cmd.Flags().StringVar(&ff.typeName, "type", "", "Type (class) name")
	cmd.Flags().BoolVar(&ff.noPlaceholder, "no-placeholder", false, "Omit the deliberately incomplete method")
}

func (ff *fixtureFlags) options(cfg *config.Config) fixture.Options {
	return fixture.Options{
		Language:        fixture.Language(config.ResolveValue(ff.language, cfg.FixtureLanguage)),
		Package:         config.ResolveValue(ff.pkg, cfg.FixturePackage),
		TypeName:        ff.typeName,
		OmitPlaceholder: ff.noPlaceholder,
	}
}

func newFixtureCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Render, write and check fixture source files",
		Long: `Commands for the fixture source consumed by language-tooling tests.

The rendered fixture ends in a deliberately incomplete method so parsers
report a syntax error at a known location.`,
	}

	cmd.AddCommand(newFixtureRenderCmd(o))
	cmd.AddCommand(newFixtureWriteCmd(o))
	cmd.AddCommand(newFixtureCheckCmd(o))
	cmd.AddCommand(newFixtureDiffCmd(o))

	return cmd
}

func newFixtureRenderCmd(o *rootOptions) *cobra.Command {
	var ff fixtureFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print fixture source to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Render(ff.options(o.cfg))
			if err != nil {
				return err
			}
			return output.New(o.json, o.min, cmd.OutOrStdout()).Print(f, func(w io.Writer, _ interface{}) {
				io.WriteString(w, f.Source)
			})
		},
	}
	ff.register(cmd)
	return cmd
}

func newFixtureWriteCmd(o *rootOptions) *cobra.Command {
	var (
		ff    fixtureFlags
		force bool
	)
	cmd := &cobra.Command{
		Use:   "write [dir]",
		Short: "Write the fixture file into a directory",
		Long: `Write the fixture file into dir, or into fixture_dir from the config file
when dir is omitted. Existing files are only replaced with --force.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := o.cfg.FixtureDir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return &valuepair.Error{
					Type:    valuepair.ErrTypeInvalidInput,
					Message: "no fixture directory given",
					Hint:    "Pass a directory argument or set fixture_dir in the config file.",
				}
			}

			path, f, err := fixture.Write(dir, ff.options(o.cfg), force)
			if err != nil {
				return err
			}

			result := map[string]interface{}{
				"file":             path,
				"language":         f.Language,
				"placeholder_line": f.PlaceholderLine,
			}
			out := output.New(o.json, o.min, cmd.OutOrStdout())
			return out.Print(result, func(w io.Writer, _ interface{}) {
				if o.min {
					fmt.Fprintln(w, path)
					return
				}
				out.PrintLine("WROTE", path)
				if f.PlaceholderLine > 0 {
					out.PrintLine("PLACEHOLDER", fmt.Sprintf("line %d", f.PlaceholderLine))
				}
			})
		},
	}
	ff.register(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing fixture")
	return cmd
}

func newFixtureCheckCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Verify a Go fixture still fails to parse at its placeholder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := fixture.Check(args[0])
			if err != nil {
				return err
			}

			err = output.New(o.json, o.min, cmd.OutOrStdout()).Print(res, func(w io.Writer, _ interface{}) {
				mark := "✓ HEALTHY"
				if !res.Healthy {
					mark = "✗ UNHEALTHY"
				}
				fmt.Fprintf(w, "%s: %s\n", mark, res.Message)
				if o.min {
					return
				}
				for _, d := range res.Diagnostics {
					fmt.Fprintf(w, "  %s\n", d)
				}
			})
			if err != nil {
				return err
			}
			if !res.Healthy {
				return &valuepair.Error{Type: valuepair.ErrTypeFixture, Message: "fixture check failed"}
			}
			return nil
		},
	}
	return cmd
}

func newFixtureDiffCmd(o *rootOptions) *cobra.Command {
	var ff fixtureFlags
	cmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Compare a fixture file with its canonical rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := fixture.Drift(args[0], ff.options(o.cfg))
			if err != nil {
				return err
			}

			err = output.New(o.json, o.min, cmd.OutOrStdout()).Print(res, func(w io.Writer, _ interface{}) {
				if res.Identical {
					fmt.Fprintln(w, "IDENTICAL: fixture matches its canonical rendering")
					return
				}
				io.WriteString(w, linediff.Format(res.Hunks))
			})
			if err != nil {
				return err
			}
			if !res.Identical {
				return &valuepair.Error{Type: valuepair.ErrTypeFixture, Message: "fixture drifted from its canonical rendering"}
			}
			return nil
		},
	}
	ff.register(cmd)
	return cmd
}
