// Package main provides the entry point for the Deep Job Seek CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobseek",
	Short: "Deep Job Seek resume generator",
	Long:  "Deep Job Seek generates tailored, JSON Resume schema conformant resumes from free-text job descriptions using semantic retrieval over an embedded profile corpus.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
