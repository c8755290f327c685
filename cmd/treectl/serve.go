package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpAdapter "github.com/bcrumbs/booben-common-tree/pkg/adapters/http"
	"github.com/bcrumbs/booben-common-tree/pkg/adapters/memory"
	"github.com/bcrumbs/booben-common-tree/pkg/observability"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a forest document over HTTP",
	Long:  `Indexes the forest document and exposes it as a JSON API (roots, nodes, children), plus Prometheus metrics on /metrics. Remote processes can lazily walk the forest through the HTTP resolver.`,
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

		// Walker metrics share the default registry with the process
		// metrics exposed below.
		observability.NewMetrics(prometheus.DefaultRegisterer)

		port, _ := cmd.Flags().GetString("port")
		r := chi.NewRouter()
		r.Handle("/metrics", promhttp.Handler())
		r.Mount("/", httpAdapter.NewHandler(index))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: r,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting forest server on %s (%d nodes)\n", srv.Addr, index.Count())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Forest server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
