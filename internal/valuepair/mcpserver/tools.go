package mcpserver

import (
	"encoding/json"
)

// ToolPrefix is the prefix for all valuepair tools
const ToolPrefix = "valuepair_"

// ToolDefinition defines a tool for the MCP SDK
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// GetToolDefinitions returns tool definitions for the official MCP SDK
func GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        ToolPrefix + "add",
			Description: "Construct a ValuePair from two operands and return a + b. Operands may be numbers or numeric strings. Kind 'auto' (default) adds as 64-bit integers when both operands are integers, otherwise as floats. Integer overflow wraps.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"a": {
						"type": ["number", "string"],
						"description": "First operand"
					},
					"b": {
						"type": ["number", "string"],
						"description": "Second operand"
					},
					"kind": {
						"type": "string",
						"enum": ["auto", "int", "float"],
						"description": "Numeric kind (default: auto)"
					}
				},
				"required": ["a", "b"]
			}`),
		},
		{
			Name:        ToolPrefix + "print_values",
			Description: "Run the ValuePair print operation. Always returns the four lines 0, 1, 2, 3 regardless of operands.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {}
			}`),
		},
		{
			Name:        ToolPrefix + "render_fixture",
			Description: "Render the ValuePair fixture source. The fixture ends in a deliberately incomplete method so parsers report a syntax error at a known line (returned as placeholder_line).",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"language": {
						"type": "string",
						"enum": ["go", "python"],
						"description": "Fixture language (default: go)"
					},
					"package": {
						"type": "string",
						"description": "Go package name (default: fixture)"
					},
					"type_name": {
						"type": "string",
						"description": "Type or class name (default: ValuePair)"
					},
					"omit_placeholder": {
						"type": "boolean",
						"description": "Render without the incomplete method"
					}
				}
			}`),
		},
		{
			Name:        ToolPrefix + "check_fixture",
			Description: "Parse a Go fixture file and report whether its first syntax error is the deliberately incomplete placeholder method.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "string",
						"description": "Path to the .go fixture file"
					}
				},
				"required": ["path"]
			}`),
		},
		{
			Name:        ToolPrefix + "batch",
			Description: "Verify add over every case in a YAML, TOML or JSON case file. Each sum is checked against an independently evaluated 'a + b' and the optional expect value.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"file": {
						"type": "string",
						"description": "Path to the case file"
					},
					"path": {
						"type": "string",
						"description": "gjson path to the case array in JSON input (default: cases)"
					},
					"kind": {
						"type": "string",
						"enum": ["auto", "int", "float"],
						"description": "Numeric kind (default: auto)"
					}
				},
				"required": ["file"]
			}`),
		},
	}
}
