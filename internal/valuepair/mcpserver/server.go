package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName         = "valuepair-mcp"
	ServerVersion      = "1.0.0"
	serverInstructions = "ValuePair MCP exposes the ValuePair language-tooling fixture: add two operands, run the fixed print operation, render fixture source with a deliberately incomplete method, check fixtures for that syntax error, and verify add over case files."
)

// NewServer returns an MCP server with every valuepair tool registered.
func NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})

	for _, toolDef := range GetToolDefinitions() {
		td := toolDef
		server.AddTool(&mcp.Tool{
			Name:        td.Name,
			Description: td.Description,
			InputSchema: td.InputSchema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := decodeArguments(req.Params.Arguments)
			if err != nil {
				return errorResult("Error parsing arguments: " + err.Error()), nil
			}

			text, err := ExecuteHandler(td.Name, args)
			if err != nil {
				return errorResult("Error: " + err.Error()), nil
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: text},
				},
			}, nil
		})
	}

	return server
}

// decodeArguments keeps JSON numbers as json.Number so integer operands
// beyond float64 precision reach the handlers unchanged.
func decodeArguments(raw json.RawMessage) (map[string]interface{}, error) {
	var args map[string]interface{}
	if len(raw) == 0 {
		return args, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil {
		return nil, err
	}
	return args, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
