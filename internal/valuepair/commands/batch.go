package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
	"github.com/samestrin/valuepair-fixture/internal/valuepair/batch"
	"github.com/samestrin/valuepair-fixture/internal/valuepair/config"
	"github.com/samestrin/valuepair-fixture/pkg/output"
)

func newBatchCmd(o *rootOptions) *cobra.Command {
	var (
		kind     string
		jsonPath string
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Verify add over a file of operand pairs",
		Long: `Verify add over every case in a YAML, TOML or JSON file.

Each sum is compared with "a + b" evaluated by an expression engine and, when
the case sets expect, with the expected value.

File layout (YAML):
  cases:
    - name: positive
      a: 2
      b: 3
      expect: 5

JSON input may select the case array with --path (gjson syntax).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := valuepair.ParseKind(config.ResolveValue(kind, o.cfg.Kind))
			if err != nil {
				return err
			}

			cases, err := batch.LoadCases(args[0], jsonPath)
			if err != nil {
				return err
			}

			report, err := batch.Run(k, cases)
			if err != nil {
				return err
			}

			err = output.New(o.json, o.min, cmd.OutOrStdout()).Print(report, func(w io.Writer, _ interface{}) {
				printReport(w, report, o.min, isTerminal(w))
			})
			if err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%d of %d cases failed", report.Failed, report.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Numeric kind: auto, int, float")
	cmd.Flags().StringVar(&jsonPath, "path", "", "gjson path to the case array in JSON input (default \"cases\")")

	return cmd
}

func printReport(w io.Writer, report *batch.Report, minimal, tty bool) {
	pass, fail := "PASS", "FAIL"
	if tty {
		pass, fail = "✓", "✗"
	}

	for _, c := range report.Cases {
		if c.OK {
			if !minimal {
				fmt.Fprintf(w, "%s %s: %s\n", pass, c.Name, c.Sum)
			}
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", fail, c.Name, c.Message)
	}

	if !minimal {
		fmt.Fprintln(w, "---")
	}
	fmt.Fprintf(w, "PASSED: %d/%d\n", report.Passed, report.Total)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
