package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wrightlabs/sitewright/internal/config"
	"github.com/wrightlabs/sitewright/internal/generation"
	"github.com/wrightlabs/sitewright/internal/handlers"
)

func newServeCmd() *cobra.Command {
	var port string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the site generation web service",
		Long: `Starts the Sitewright web interface on the specified port.

The web interface collects a business profile, generates content and
photography concurrently, and serves an editable preview of the
resulting one-page site.`,
		Example: `  # Start server on default port 8888
  sitewright serve

  # Start server on custom port with explicit config
  sitewright serve --port 3000 --config sitewright.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			generator, err := generation.FromConfig(cfg)
			if err != nil {
				return err
			}
			handler := handlers.New(generator)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/generate", handler.HandleGenerate)
			mux.HandleFunc("/api/generations", handler.HandleGenerations)
			mux.HandleFunc("/api/generations/", handler.HandleGenerationDetail)
			mux.HandleFunc("/api/preview/", handler.HandlePreview)
			mux.HandleFunc("/api/checkout", handler.HandleCheckout)
			mux.HandleFunc("/api/webhook", handler.HandleWebhook)
			mux.HandleFunc("/api/deploy", handler.HandleDeploy)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Sitewright interface available", "addr", addr, "url", "http://localhost"+addr, "providers", cfg.Providers)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")

	return cmd
}
