package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/optimize"
	"github.com/jonathan/resume-optimizer/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the upload, optimize, download, and cleanup endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Defaults()
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	optimizer, err := optimize.NewClaudeClient(cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create optimization client: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		UploadDir:   cfg.UploadDir,
		OutputDir:   cfg.OutputDir,
		MaxUploadMB: cfg.MaxUploadMB,
		CleanupMins: cfg.CleanupMins,
	}, optimizer)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
