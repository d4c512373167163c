package mcpserver

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/samestrin/valuepair-fixture/internal/testhelpers"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != 5 {
		t.Fatalf("expected 5 tools, got %d", len(tools))
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if !strings.HasPrefix(tool.Name, ToolPrefix) {
			t.Errorf("tool %s missing prefix %s", tool.Name, ToolPrefix)
		}
		if seen[tool.Name] {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		seen[tool.Name] = true

		var schema map[string]interface{}
		if err := json.Unmarshal(tool.InputSchema, &schema); err != nil {
			t.Errorf("tool %s has invalid schema: %v", tool.Name, err)
			continue
		}
		if schema["type"] != "object" {
			t.Errorf("tool %s schema type = %v, want object", tool.Name, schema["type"])
		}
	}
}

func TestExecuteHandler_Add(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"numbers", map[string]interface{}{"a": float64(2), "b": float64(3)}, `{"a":2,"b":3,"k":"int","s":5}`},
		{"strings", map[string]interface{}{"a": "-1", "b": "1"}, `{"a":-1,"b":1,"k":"int","s":0}`},
		{"fractions", map[string]interface{}{"a": 0.5, "b": 0.25}, `{"a":0.5,"b":0.25,"k":"float","s":0.75}`},
		{"json numbers", map[string]interface{}{"a": json.Number("9007199254740993"), "b": json.Number("0")}, `{"a":9007199254740993,"b":0,"k":"int","s":9007199254740993}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExecuteHandler("valuepair_add", tt.args)
			if err != nil {
				t.Fatalf("ExecuteHandler failed: %v", err)
			}
			if strings.TrimSpace(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExecuteHandler_AddErrors(t *testing.T) {
	tests := []map[string]interface{}{
		{"b": float64(1)},
		{"a": float64(1)},
		{"a": "x", "b": "1"},
		{"a": float64(1), "b": float64(2), "kind": "complex"},
	}
	for _, args := range tests {
		if _, err := ExecuteHandler("valuepair_add", args); err == nil {
			t.Errorf("expected error for args %v", args)
		}
	}
}

func TestExecuteHandler_PrintValues(t *testing.T) {
	got, err := ExecuteHandler("valuepair_print_values", nil)
	if err != nil {
		t.Fatalf("ExecuteHandler failed: %v", err)
	}
	if got != "0\n1\n2\n3\n" {
		t.Errorf("got %q", got)
	}
}

func TestExecuteHandler_Fixture(t *testing.T) {
	got, err := ExecuteHandler("valuepair_render_fixture", map[string]interface{}{"json": true, "min": false})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var f struct {
		FileName        string `json:"file_name"`
		PlaceholderLine int    `json:"placeholder_line"`
		Source          string `json:"source"`
	}
	if err := json.Unmarshal([]byte(got), &f); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if f.FileName != "valuepair.go" || f.PlaceholderLine != 30 {
		t.Errorf("unexpected fixture: %+v", f)
	}

	path := testhelpers.CreateTempFile(t, f.FileName, f.Source)

	got, err = ExecuteHandler("valuepair_check_fixture", map[string]interface{}{"path": path})
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(got, `"ok":true`) {
		t.Errorf("expected healthy fixture, got %s", got)
	}

	if _, err := ExecuteHandler("valuepair_check_fixture", map[string]interface{}{}); err == nil {
		t.Error("check without path should fail")
	}
}

func TestExecuteHandler_Batch(t *testing.T) {
	path := testhelpers.CreateTempFile(t, "cases.toml", "[[cases]]\nname = \"p\"\na = 2\nb = 3\nexpect = 5\n")

	got, err := ExecuteHandler("valuepair_batch", map[string]interface{}{"file": path})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if !strings.Contains(got, `"passed":1`) || !strings.Contains(got, `"failed":0`) {
		t.Errorf("unexpected report: %s", got)
	}

	if _, err := ExecuteHandler("valuepair_batch", map[string]interface{}{}); err == nil {
		t.Error("batch without file should fail")
	}
}

func TestExecuteHandler_Unknown(t *testing.T) {
	if _, err := ExecuteHandler("valuepair_nope", nil); err == nil {
		t.Error("unknown tool should fail")
	}
}
