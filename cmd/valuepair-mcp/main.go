package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/samestrin/valuepair-fixture/internal/valuepair/mcpserver"
)

func main() {
	server := mcpserver.NewServer()

	fmt.Fprintf(os.Stderr, "%s v%s started with %d tools\n",
		mcpserver.ServerName, mcpserver.ServerVersion, len(mcpserver.GetToolDefinitions()))

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
