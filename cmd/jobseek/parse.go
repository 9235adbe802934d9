package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/deep-job-seek/internal/parsing"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume.txt]",
	Short: "Parse a free-text resume into the resume document shape (best effort)",
	Long: `Parse a plain text, markdown, or JSON resume into the structured resume
document shape. Classification is heuristic and best effort; review the output
before relying on it. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	resume := parsing.ResumeText(string(data))
	if resume == nil {
		return fmt.Errorf("empty resume input")
	}

	out, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
