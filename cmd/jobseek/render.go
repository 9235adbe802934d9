package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/deep-job-seek/internal/assembly"
	"github.com/jonathan/deep-job-seek/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <resume.json>",
	Short: "Render a resume document as Markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	fmt.Println(assembly.RenderMarkdown(&resume))
	return nil
}
