package fixture

import (
	"errors"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
)

// Diagnostic is one syntax error reported by the parser.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// CheckResult describes whether a fixture file still carries its placeholder
// syntax error and nothing else.
type CheckResult struct {
	File            string       `json:"file"`
	Healthy         bool         `json:"healthy"`
	PlaceholderLine int          `json:"placeholder_line,omitempty"`
	Diagnostics     []Diagnostic `json:"diagnostics,omitempty"`
	Message         string       `json:"message"`
}

// Check parses a Go fixture file. The fixture is healthy when the placeholder
// method is present, the file fails to parse, and the first syntax error is
// located at or after the placeholder's declaration.
func Check(path string) (*CheckResult, error) {
	if filepath.Ext(path) != ".go" {
		return nil, ErrUnsupportedLanguage(filepath.Ext(path)).WithHint("Only Go fixtures (.go) can be checked.")
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, valuepair.ErrFileNotFound(path)
		}
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	return CheckSource(path, src)
}

// CheckSource is Check for source already in memory.
func CheckSource(name string, src []byte) (*CheckResult, error) {
	result := &CheckResult{
		File:            name,
		PlaceholderLine: placeholderLine(string(src), LanguageGo),
	}

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, name, src, parser.AllErrors)
	if err != nil {
		var list scanner.ErrorList
		if !errors.As(err, &list) {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		list.Sort()
		for _, e := range list {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				File:    name,
				Line:    e.Pos.Line,
				Column:  e.Pos.Column,
				Message: e.Msg,
			})
		}
	}

	switch {
	case result.PlaceholderLine == 0 && len(result.Diagnostics) == 0:
		result.Message = "placeholder missing: file parses cleanly"
	case result.PlaceholderLine == 0:
		result.Message = fmt.Sprintf("placeholder missing: unexpected syntax error at line %d", result.Diagnostics[0].Line)
	case len(result.Diagnostics) == 0:
		result.Message = fmt.Sprintf("placeholder at line %d no longer produces a syntax error", result.PlaceholderLine)
	case result.Diagnostics[0].Line < result.PlaceholderLine:
		result.Message = fmt.Sprintf("syntax error at line %d precedes placeholder at line %d", result.Diagnostics[0].Line, result.PlaceholderLine)
	default:
		result.Healthy = true
		result.Message = fmt.Sprintf("placeholder at line %d produces %d syntax error(s)", result.PlaceholderLine, len(result.Diagnostics))
	}

	return result, nil
}
