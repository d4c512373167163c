// Package linediff computes line-level differences between two texts.
package linediff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Hunk is one changed run of lines. Op is "-" for lines only in the expected
// text and "+" for lines only in the actual text.
type Hunk struct {
	Op    string   `json:"op"`
	Lines []string `json:"lines"`
}

// Diff returns the changed runs between expected and actual, in order.
// Unchanged lines are omitted; identical inputs return nil.
func Diff(expected, actual string) []Hunk {
	if expected == actual {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var hunks []Hunk
	for _, d := range diffs {
		var op string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = "-"
		case diffmatchpatch.DiffInsert:
			op = "+"
		default:
			continue
		}
		hunks = append(hunks, Hunk{Op: op, Lines: strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")})
	}
	return hunks
}

// Format renders hunks as "<op> <line>" lines.
func Format(hunks []Hunk) string {
	var sb strings.Builder
	for _, h := range hunks {
		for _, line := range h.Lines {
			sb.WriteString(h.Op)
			sb.WriteString(" ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
