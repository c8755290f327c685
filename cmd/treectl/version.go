package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tree "github.com/bcrumbs/booben-common-tree"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of treectl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("treectl version %s\n", strings.TrimSpace(tree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
