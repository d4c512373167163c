// Package pathvalidation rejects paths that still carry unexpanded template
// or shell variables, such as a fixture directory passed as "$FIXTURE_DIR".
package pathvalidation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyPath is returned for a blank path.
var ErrEmptyPath = errors.New("path cannot be empty")

// UnresolvedTemplateError indicates a path contains an unresolved variable.
type UnresolvedTemplateError struct {
	Path     string
	Variable string
	Pattern  string
}

func (e *UnresolvedTemplateError) Error() string {
	return fmt.Sprintf("path contains unresolved template variable '%s' - check your variable substitution", e.Variable)
}

// More specific patterns come first: ${{X}} must win over {{X}}.
var templatePatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"github-actions", regexp.MustCompile(`\$\{\{[^}]*\}\}`)},
	{"double-brace", regexp.MustCompile(`\{\{[^}]*\}\}`)},
	{"shell-brace", regexp.MustCompile(`\$\{[^}]+\}`)},
	{"shell-var", regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`)},
}

// CheckUnresolvedTemplateVars returns an *UnresolvedTemplateError for the
// first template-like pattern found in path.
func CheckUnresolvedTemplateVars(path string) error {
	for _, tp := range templatePatterns {
		if match := tp.pattern.FindString(path); match != "" {
			return &UnresolvedTemplateError{
				Path:     path,
				Variable: match,
				Pattern:  tp.name,
			}
		}
	}
	return nil
}

// ValidatePathForCreation checks a path that is about to be created.
func ValidatePathForCreation(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	for _, component := range strings.Split(strings.ReplaceAll(path, "\\", "/"), "/") {
		if component == "" {
			continue
		}
		if err := CheckUnresolvedTemplateVars(component); err != nil {
			return err
		}
	}
	return nil
}
