package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
)

var yamlPosition = regexp.MustCompile(`\[(\d+):(\d+)\]`)

// ErrConfigNotFound creates an error for when the config file doesn't exist
func ErrConfigNotFound(path string) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Create a config file or point --config (or VALUEPAIR_CONFIG) at an existing one.",
	}
}

// ErrConfigEmpty creates an error for an empty config file
func ErrConfigEmpty(path string) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeConfiguration,
		Message: fmt.Sprintf("config file is empty: %s", path),
		Hint:    "Add a 'valuepair:' section or drop --config to use defaults.",
	}
}

// ErrConfigPathEmpty creates an error for a blank config path
func ErrConfigPathEmpty() *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeInvalidInput,
		Message: "config file path cannot be empty or whitespace",
		Hint:    "Provide a valid file path with --config or omit the flag to use defaults.",
	}
}

// ErrConfigInvalidYAML reports a YAML syntax error, with line and column
// when goccy/go-yaml provides them.
func ErrConfigInvalidYAML(path string, cause error) *valuepair.Error {
	message := fmt.Sprintf("invalid YAML syntax in %s", path)
	if pos := extractLineColumn(cause); pos != "" {
		message = fmt.Sprintf("invalid YAML syntax in %s at %s", path, pos)
	}
	return &valuepair.Error{
		Type:    valuepair.ErrTypeInvalidInput,
		Message: message,
		Cause:   cause,
		Hint:    "Check indentation, missing colons and unclosed quotes near the indicated location.",
	}
}

// ErrConfigInvalidTOML reports a TOML syntax error.
func ErrConfigInvalidTOML(path string, cause error) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeInvalidInput,
		Message: fmt.Sprintf("invalid TOML syntax in %s", path),
		Cause:   cause,
		Hint:    "Settings live under a [valuepair] table.",
	}
}

// ErrConfigUnsupported reports an extension Load cannot decode.
func ErrConfigUnsupported(path string) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeConfiguration,
		Message: fmt.Sprintf("unsupported config format: %s", path),
		Hint:    fmt.Sprintf("Use one of: %v", SupportedExtensions()),
	}
}

// ErrConfigMissingSection reports a file without a valuepair section.
func ErrConfigMissingSection(path string) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeConfiguration,
		Message: fmt.Sprintf("config file missing required 'valuepair' section: %s", path),
		Hint:    "Example:\n  valuepair:\n    kind: int\n    fixture_language: go",
	}
}

// WrapReadError maps an os error from reading a config file.
func WrapReadError(path string, err error) *valuepair.Error {
	if os.IsNotExist(err) {
		return ErrConfigNotFound(path)
	}
	if os.IsPermission(err) {
		return &valuepair.Error{
			Type:    valuepair.ErrTypeNotFound,
			Message: fmt.Sprintf("cannot read config file: %s", path),
			Cause:   err,
			Hint:    "Check file permissions and ensure the file is readable.",
		}
	}
	return &valuepair.Error{
		Type:    valuepair.ErrTypeNotFound,
		Message: fmt.Sprintf("failed to read config file: %s", path),
		Cause:   err,
	}
}

// extractLineColumn pulls "[line:col]" out of a goccy/go-yaml error.
func extractLineColumn(err error) string {
	if err == nil {
		return ""
	}
	m := yamlPosition.FindStringSubmatch(err.Error())
	if len(m) == 3 {
		return fmt.Sprintf("line %s, column %s", m[1], m[2])
	}
	return ""
}
