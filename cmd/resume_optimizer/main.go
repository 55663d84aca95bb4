// Package main provides the entry point for the Resume Optimizer service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume Optimizer HTTP API Server",
	Long:  "Resume Optimizer tailors an uploaded resume to a target job description and renders the result as a formatted PDF, served over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
