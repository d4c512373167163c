package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// connect starts the server on in-memory transports and returns a client
// session.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := NewServer().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestServerListTools(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(res.Tools) != len(GetToolDefinitions()) {
		t.Errorf("expected %d tools, got %d", len(GetToolDefinitions()), len(res.Tools))
	}
}

func TestServerCallTool(t *testing.T) {
	session := connect(t)
	ctx := context.Background()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      ToolPrefix + "add",
		Arguments: map[string]interface{}{"a": 2, "b": 3},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	text := res.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, `"s":5`) {
		t.Errorf("unexpected add result: %s", text)
	}

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      ToolPrefix + "add",
		Arguments: map[string]interface{}{"a": "two", "b": 3},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !res.IsError {
		t.Error("malformed operand should produce a tool error")
	}
}

func TestServerCallTool_LargeIntegers(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      ToolPrefix + "add",
		Arguments: map[string]interface{}{"a": int64(9007199254740993), "b": 0},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}

	want := `{"a":9007199254740993,"b":0,"k":"int","s":9007199254740993}`
	if text := strings.TrimSpace(res.Content[0].(*mcp.TextContent).Text); text != want {
		t.Errorf("got %s, want %s", text, want)
	}
}

func TestDecodeArguments(t *testing.T) {
	args, err := decodeArguments([]byte(`{"a": 9223372036854775807, "b": "1", "json": true}`))
	if err != nil {
		t.Fatalf("decodeArguments: %v", err)
	}
	if n, ok := args["a"].(json.Number); !ok || n.String() != "9223372036854775807" {
		t.Errorf("a should stay an exact json.Number, got %#v", args["a"])
	}
	if args["json"] != true {
		t.Errorf("booleans should decode as bool, got %#v", args["json"])
	}

	if args, err := decodeArguments(nil); err != nil || args != nil {
		t.Errorf("empty arguments should decode to nil, got %v, %v", args, err)
	}
	if _, err := decodeArguments([]byte(`{"a":`)); err == nil {
		t.Error("truncated arguments should fail to decode")
	}
}
