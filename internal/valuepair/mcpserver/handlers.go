// Package mcpserver exposes the valuepair harness as MCP tools. Handlers run
// in-process and return the same JSON the CLI prints with --json --min.
package mcpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
	"github.com/samestrin/valuepair-fixture/internal/valuepair/batch"
	"github.com/samestrin/valuepair-fixture/internal/valuepair/fixture"
	"github.com/samestrin/valuepair-fixture/pkg/output"
	pkgvaluepair "github.com/samestrin/valuepair-fixture/pkg/valuepair"
)

// ExecuteHandler runs the tool named toolName with args.
func ExecuteHandler(toolName string, args map[string]interface{}) (string, error) {
	var (
		result interface{}
		err    error
	)

	switch strings.TrimPrefix(toolName, ToolPrefix) {
	case "add":
		result, err = handleAdd(args)
	case "print_values":
		return handlePrintValues()
	case "render_fixture":
		result, err = handleRenderFixture(args)
	case "check_fixture":
		result, err = handleCheckFixture(args)
	case "batch":
		result, err = handleBatch(args)
	default:
		return "", fmt.Errorf("unknown tool: %s", toolName)
	}
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := output.New(getBoolDefault(args, "json", true), getBoolDefault(args, "min", true), &buf).Print(result, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func handleAdd(args map[string]interface{}) (interface{}, error) {
	a, ok := getOperand(args, "a")
	if !ok {
		return nil, fmt.Errorf("a is required")
	}
	b, ok := getOperand(args, "b")
	if !ok {
		return nil, fmt.Errorf("b is required")
	}
	kind, err := valuepair.ParseKind(getString(args, "kind"))
	if err != nil {
		return nil, err
	}
	return valuepair.Evaluate(kind, a, b)
}

func handlePrintValues() (string, error) {
	var buf bytes.Buffer
	if err := pkgvaluepair.New(0, 0).FprintValues(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func handleRenderFixture(args map[string]interface{}) (interface{}, error) {
	return fixture.Render(fixture.Options{
		Language:        fixture.Language(getString(args, "language")),
		Package:         getString(args, "package"),
		TypeName:        getString(args, "type_name"),
		OmitPlaceholder: getBool(args, "omit_placeholder"),
	})
}

func handleCheckFixture(args map[string]interface{}) (interface{}, error) {
	path := getString(args, "path")
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return fixture.Check(path)
}

func handleBatch(args map[string]interface{}) (interface{}, error) {
	file := getString(args, "file")
	if file == "" {
		return nil, fmt.Errorf("file is required")
	}
	kind, err := valuepair.ParseKind(getString(args, "kind"))
	if err != nil {
		return nil, err
	}
	cases, err := batch.LoadCases(file, getString(args, "path"))
	if err != nil {
		return nil, err
	}
	return batch.Run(kind, cases)
}

// getOperand accepts a JSON number (json.Number when decoded by the server)
// or a numeric string.
func getOperand(args map[string]interface{}, key string) (string, bool) {
	switch v := args[key].(type) {
	case string:
		return v, v != ""
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		return "", false
	}
}

func getString(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func getBool(args map[string]interface{}, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func getBoolDefault(args map[string]interface{}, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}
