package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/deep-job-seek/internal/assembly"
	"github.com/jonathan/deep-job-seek/internal/schemas"
	"github.com/jonathan/deep-job-seek/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Validate a resume document",
	Long:  "Validate a resume JSON file structurally (essential fields) and against the JSON Resume schema.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	if !assembly.Validate(&resume) {
		return fmt.Errorf("resume is missing essential fields (basics name/email and a non-empty work section)")
	}

	if err := schemas.ValidateResumeJSON(string(data)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	fmt.Println("Resume is valid.")
	return nil
}
