// Package mcp exposes an indexed forest as an MCP server, so agent hosts
// can browse and traverse a tree through tool calls.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bcrumbs/booben-common-tree/pkg/adapters/memory"
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/walker"
)

// Server wraps an indexed forest and exposes it as an MCP Server.
type Server[T any] struct {
	index     *memory.Index[T]
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server over the given index.
func NewServer[T any](index *memory.Index[T], name, version string) *Server[T] {
	s := &Server[T]{
		index:     index,
		mcpServer: server.NewMCPServer(name, version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server[T]) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server[T]) registerTools() {
	// TOOL: count_nodes
	s.mcpServer.AddTool(mcp.NewTool("count_nodes",
		mcp.WithDescription("Count all nodes in the forest."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(fmt.Sprintf("%d", s.index.Count())), nil
	})

	// TOOL: get_node
	s.mcpServer.AddTool(mcp.NewTool("get_node",
		mcp.WithDescription("Get a single node by id (children omitted)."),
		mcp.WithString("id", mcp.Required(), mcp.Description("The node id")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		node, err := s.index.Node(id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(&domain.Node[T, string]{ID: node.ID, Parent: node.Parent, Value: node.Value})
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: list_children
	s.mcpServer.AddTool(mcp.NewTool("list_children",
		mcp.WithDescription("List the ordered child ids of a node."),
		mcp.WithString("id", mcp.Required(), mcp.Description("The parent node id")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		children, err := s.index.Children(id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
		}
		ids := make([]string, 0, len(children))
		for _, c := range children {
			ids = append(ids, c.ID)
		}
		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: walk
	s.mcpServer.AddTool(mcp.NewTool("walk",
		mcp.WithDescription("Walk the forest in pre-order and return the visited node ids. Pass a root id to restrict the walk to one subtree."),
		mcp.WithString("root", mcp.Description("Optional id of the subtree root to walk")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roots := s.index.Roots()
		if rootID := request.GetString("root", ""); rootID != "" {
			node, err := s.index.Node(rootID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
			}
			roots = domain.Forest[T, string]{node}
		}

		var ids []string
		w := walker.New(roots)
		for {
			node, _ := w.Next(ctx)
			if node == nil {
				break
			}
			ids = append(ids, node.ID)
		}

		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server[T]) registerResources() {
	// EXPOSE: tree://forest
	s.mcpServer.AddResource(mcp.NewResource("tree://forest", "Full Nested Forest",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.index.Roots())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal forest: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "tree://forest",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
