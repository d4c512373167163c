package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
	"github.com/samestrin/valuepair-fixture/pkg/output"
	pkgvaluepair "github.com/samestrin/valuepair-fixture/pkg/valuepair"
)

type printValuesResult struct {
	Values []int `json:"values"`
}

func newPrintValuesCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print-values [a b]",
		Short: "Print 0, 1, 2 and 3, one per line",
		Long: `Print the fixed sequence 0, 1, 2, 3, one value per line.

The optional operands construct the ValuePair the operation runs on; they do
not change the output.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := "0", "0"
			if len(args) == 2 {
				a, b = args[0], args[1]
			}
			ops, err := valuepair.ParseOperands(valuepair.KindFloat, a, b)
			if err != nil {
				return err
			}
			pair := pkgvaluepair.New(ops.FltA, ops.FltB)

			f := output.New(o.json, o.min, cmd.OutOrStdout())
			var writeErr error
			err = f.Print(printValuesResult{Values: pkgvaluepair.Values()}, func(w io.Writer, _ interface{}) {
				writeErr = pair.FprintValues(w)
			})
			if err != nil {
				return err
			}
			return writeErr
		},
	}
	return cmd
}
