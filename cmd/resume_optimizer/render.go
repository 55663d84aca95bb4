package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/layout"
	"github.com/jonathan/resume-optimizer/internal/pdf"
	"github.com/jonathan/resume-optimizer/internal/resume"
	"github.com/jonathan/resume-optimizer/internal/styles"
)

var (
	renderInput  string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume record JSON file to PDF",
	Long:  `Read a structured resume record from a JSON file and render it through the layout pipeline, without calling the optimization service.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "Path to resume record JSON file")
	renderCmd.Flags().StringVar(&renderOutput, "output", "resume.pdf", "Path for the rendered PDF")
	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	record, err := resume.Decode(data)
	if err != nil {
		return err
	}

	blocks, err := layout.Compose(record)
	if err != nil {
		return err
	}

	if err := pdf.Render(blocks, styles.Letter, renderOutput); err != nil {
		return err
	}

	fmt.Printf("Rendered %s\n", renderOutput)
	return nil
}
