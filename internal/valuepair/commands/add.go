package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
	"github.com/samestrin/valuepair-fixture/internal/valuepair/config"
	"github.com/samestrin/valuepair-fixture/pkg/output"
)

func newAddCmd(o *rootOptions) *cobra.Command {
	var (
		kind  string
		human bool
	)

	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Construct a ValuePair and print a + b",
		Long: `Construct a ValuePair from two operands and print their sum.

Kinds:
  auto   int when both operands are integers, float otherwise (default)
  int    64-bit integers; overflow wraps
  float  64-bit floating point

Examples:
  valuepair add 2 3
  valuepair add --kind float 0.5 0.25
  valuepair add -- -1 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := valuepair.ParseKind(config.ResolveValue(kind, o.cfg.Kind))
			if err != nil {
				return err
			}

			res, err := valuepair.Evaluate(k, args[0], args[1])
			if err != nil {
				return err
			}

			f := output.New(o.json, o.min, cmd.OutOrStdout())
			return f.Print(res, func(w io.Writer, data interface{}) {
				sum := formatSum(res.Sum, human)
				if o.min {
					fmt.Fprintln(w, sum)
					return
				}
				f.PrintLine("RESULT", sum)
			})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Numeric kind: auto, int, float")
	cmd.Flags().BoolVar(&human, "human", false, "Group digits in text output (1,234,567)")

	return cmd
}

func formatSum(sum interface{}, human bool) string {
	if !human {
		return valuepair.FormatNumber(sum)
	}
	switch n := sum.(type) {
	case int64:
		return humanize.Comma(n)
	case float64:
		return humanize.Commaf(n)
	default:
		return valuepair.FormatNumber(sum)
	}
}
