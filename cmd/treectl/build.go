package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tree "github.com/bcrumbs/booben-common-tree"
	"github.com/bcrumbs/booben-common-tree/pkg/adapters/file"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Reconstruct a nested forest from a flat document",
	Long:  `Reads a flat forest document (nodes carrying parent ids, in any order) and outputs the reconstructed nested forest. Nodes whose parent never appears are dropped from the output.`,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)

		flat, err := loadForest(cmd)
		if err != nil {
			fmt.Printf("Error loading document: %v\n", err)
			os.Exit(1)
		}

		roots := tree.Build(flat, func(id string) string { return id })

		if dropped := len(flat) - tree.CountNodes(roots); dropped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d orphan node(s) dropped (parent missing from input)\n", dropped)
		}

		output, _ := cmd.Flags().GetString("output")
		if output != "" {
			if err := file.Save(output, roots); err != nil {
				fmt.Printf("Error writing output: %v\n", err)
				os.Exit(1)
			}
			return
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(roots); err != nil {
			fmt.Printf("Error encoding output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("output", "o", "", "Write the nested document to a file instead of stdout")
}
