package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	tree "github.com/bcrumbs/booben-common-tree"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a forest document as a markdown outline",
	Long:  `Builds a markdown bullet outline of the nested forest and renders it for the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)

		forest, err := loadForest(cmd)
		if err != nil {
			fmt.Printf("Error loading forest: %v\n", err)
			os.Exit(1)
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("# Forest (%d nodes)\n\n", tree.CountNodes(forest)))

		var outline func(nodes tree.Forest[Payload, string], depth int)
		outline = func(nodes tree.Forest[Payload, string], depth int) {
			for _, n := range nodes {
				sb.WriteString(strings.Repeat("  ", depth))
				sb.WriteString("- ")
				sb.WriteString(nodeLabel(n))
				sb.WriteString("\n")
				outline(n.Children, depth+1)
			}
		}
		outline(forest, 0)

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		)
		if err != nil {
			// No usable terminal style; fall back to the raw markdown.
			fmt.Print(sb.String())
			return
		}

		out, err := r.Render(sb.String())
		if err != nil {
			fmt.Print(sb.String())
			return
		}
		fmt.Print(out)
	},
}

// nodeLabel prefers a "name" or "title" payload entry over the raw id.
func nodeLabel(n *tree.Node[Payload, string]) string {
	for _, key := range []string{"name", "title"} {
		if v, ok := n.Value[key].(string); ok && v != "" {
			return fmt.Sprintf("**%s** (`%s`)", v, n.ID)
		}
	}
	return fmt.Sprintf("`%s`", n.ID)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
