package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	tree "github.com/bcrumbs/booben-common-tree"
)

// depthPalette colors nodes by depth (Indigo/Violet gradient).
var depthPalette = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

// walkCmd represents the walk command
var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk a forest document in pre-order",
	Long:  `Drives the depth-first walker over the document and prints one line per node, indented by depth. Subtrees of nodes named with --skip are abandoned mid-traversal.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)

		forest, err := loadForest(cmd)
		if err != nil {
			fmt.Printf("Error loading forest: %v\n", err)
			os.Exit(1)
		}

		skipList, _ := cmd.Flags().GetStringSlice("skip")
		skip := make(map[string]bool, len(skipList))
		for _, id := range skipList {
			skip[strings.TrimSpace(id)] = true
		}

		// Depth is presentation-only, so it is precomputed rather than
		// threaded through the walker.
		depths := make(map[*tree.Node[Payload, string]]int)
		var measure func(nodes tree.Forest[Payload, string], depth int)
		measure = func(nodes tree.Forest[Payload, string], depth int) {
			for _, n := range nodes {
				depths[n] = depth
				measure(n.Children, depth+1)
			}
		}
		measure(forest, 0)

		p := termenv.ColorProfile()
		w := tree.NewWalker(forest)
		ctx := context.Background()
		visited := 0
		for {
			node, _ := w.Next(ctx)
			if node == nil {
				break
			}
			visited++

			depth := depths[node]
			label := termenv.String(node.ID).Foreground(p.Color(depthPalette[depth%len(depthPalette)]))
			suffix := ""
			if node.HasChildren() {
				suffix = fmt.Sprintf(" (%d children)", node.CountChildren())
			}
			if skip[node.ID] && node.HasChildren() {
				w.AbandonSubtree()
				suffix += " [skipped]"
			}
			fmt.Printf("%s%s%s\n", strings.Repeat("  ", depth), label, suffix)
		}

		fmt.Printf("\n%d of %d nodes visited\n", visited, tree.CountNodes(forest))
	},
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().StringSlice("skip", nil, "Node ids whose subtrees are abandoned")
}
