package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tree "github.com/bcrumbs/booben-common-tree"
	"github.com/bcrumbs/booben-common-tree/pkg/adapters/file"
)

// flattenCmd represents the flatten command
var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Convert a nested forest document to its flat representation",
	Long:  `Reads a nested forest document and outputs the pre-order flat sequence, assigning sequential ids to nodes that carry none.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)

		forest, err := loadForest(cmd)
		if err != nil {
			fmt.Printf("Error loading forest: %v\n", err)
			os.Exit(1)
		}

		next := 0
		flat := tree.Flatten(forest, func(n *tree.Node[Payload, string]) string {
			if n.ID != "" {
				return n.ID
			}
			next++
			return fmt.Sprintf("n%d", next)
		})

		output, _ := cmd.Flags().GetString("output")
		if output != "" {
			if err := file.Save(output, flat); err != nil {
				fmt.Printf("Error writing output: %v\n", err)
				os.Exit(1)
			}
			return
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(flat); err != nil {
			fmt.Printf("Error encoding output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(flattenCmd)
	flattenCmd.Flags().StringP("output", "o", "", "Write the flat document to a file instead of stdout")
}
