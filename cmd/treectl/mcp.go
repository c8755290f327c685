package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	tree "github.com/bcrumbs/booben-common-tree"
	mcpAdapter "github.com/bcrumbs/booben-common-tree/pkg/adapters/mcp"
	"github.com/bcrumbs/booben-common-tree/pkg/adapters/memory"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose a forest document as an MCP server",
	Long:  `Indexes the forest document and serves it over MCP on stdio, so agent hosts can browse and walk the tree through tool calls.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)

		forest, err := loadForest(cmd)
		if err != nil {
			fmt.Printf("Error loading forest: %v\n", err)
			os.Exit(1)
		}

		index, err := memory.NewIndex(forest)
		if err != nil {
			fmt.Printf("Error indexing forest: %v\n", err)
			os.Exit(1)
		}

		server := mcpAdapter.NewServer(index, "booben-tree-mcp", strings.TrimSpace(tree.Version))
		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
