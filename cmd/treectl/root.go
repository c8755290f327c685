package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bcrumbs/booben-common-tree/internal/logging"
	"github.com/bcrumbs/booben-common-tree/pkg/adapters/file"
	"github.com/bcrumbs/booben-common-tree/pkg/domain"
)

// Payload is the CLI's node payload: arbitrary key/value data from the
// forest document.
type Payload = map[string]any

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Treectl converts and traverses tree documents",
	Long:  `Treectl works with forests stored as YAML or JSON documents: it converts between the nested and flat representations, walks them in pre-order, and serves them over HTTP or MCP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "forest.yaml", "Forest document to operate on")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// setupLogger installs the process-wide logger from the --log-level flag.
func setupLogger(cmd *cobra.Command) {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		fmt.Printf("Warning: %v, falling back to info\n", err)
	}
	slog.SetDefault(logging.New(level))
}

// loadForest reads the document named by --file.
func loadForest(cmd *cobra.Command) (domain.Forest[Payload, string], error) {
	path, _ := cmd.Flags().GetString("file")
	forest, err := file.Load[Payload](path)
	if err != nil {
		return nil, err
	}
	return forest, nil
}
