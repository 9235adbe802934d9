package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/deep-job-seek/internal/assembly"
	"github.com/jonathan/deep-job-seek/internal/config"
	"github.com/jonathan/deep-job-seek/internal/db"
	"github.com/jonathan/deep-job-seek/internal/fetch"
	"github.com/jonathan/deep-job-seek/internal/llm"
	"github.com/jonathan/deep-job-seek/internal/pipeline"
)

var (
	generateConfigPath string
	generateJobPath    string
	generateJobURL     string
	generateTopK       int
	generateUseBrowser bool
	generateVerbose    bool
	generateMarkdown   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [job description]",
	Short: "Generate a tailored resume for a job description",
	Long: `Generate a tailored resume for a job description.

The job description may be passed as an argument, read from a file (--job),
fetched from a URL (--job-url), or piped on stdin. The output is a JSON Resume
schema conformant document on stdout.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to JSON config file")
	generateCmd.Flags().StringVar(&generateJobPath, "job", "", "Path to job description text file")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL to fetch the job description from")
	generateCmd.Flags().IntVar(&generateTopK, "top-k", 0, "Number of ranked experiences to consider (default 5)")
	generateCmd.Flags().BoolVar(&generateUseBrowser, "use-browser", false, "Use headless browser for SPA job postings")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Print detailed debug information")
	generateCmd.Flags().BoolVar(&generateMarkdown, "markdown", false, "Render the resume as Markdown instead of JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.Config{
		Job:        generateJobPath,
		JobURL:     generateJobURL,
		TopK:       generateTopK,
		UseBrowser: generateUseBrowser,
		Verbose:    generateVerbose,
	}
	if generateConfigPath != "" {
		fileCfg, err := config.LoadConfig(generateConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobText, err := resolveJobText(ctx, &cfg, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(jobText) == "" {
		return fmt.Errorf("please enter a job description")
	}

	runner, client, err := newRunner(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := runner.Run(ctx, jobText, cfg.TopK)
	if err != nil {
		return fmt.Errorf("error generating resume: %w", err)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Requirements: %s\n", strings.Join(result.Requirements, ", "))
		fmt.Fprintf(os.Stderr, "Skill fit: %.0f%%\n", result.SkillFit*100)
	}

	if databaseURL := databaseURLFrom(&cfg); databaseURL != "" {
		database, dbErr := db.Connect(ctx, databaseURL)
		if dbErr != nil {
			return dbErr
		}
		defer database.Close()
		id, saveErr := database.SaveResume(ctx, jobText, result.Resume, result.SkillFit)
		if saveErr != nil {
			return saveErr
		}
		fmt.Fprintf(os.Stderr, "Archived resume %s\n", id)
	}

	if generateMarkdown {
		fmt.Println(assembly.RenderMarkdown(result.Resume))
		return nil
	}

	out, err := json.MarshalIndent(result.Resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// newRunner builds the LLM client and pipeline runner, embedding the corpus.
func newRunner(ctx context.Context, cfg *config.Config) (*pipeline.Runner, llm.Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmConfig := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, nil, err
	}

	runner, err := pipeline.New(ctx, client, client.GetModel(llm.TierLite))
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	runner.Verbose = cfg.Verbose
	return runner, client, nil
}

// resolveJobText picks the job description source: argument, file, URL, or stdin.
func resolveJobText(ctx context.Context, cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}
	if cfg.JobURL != "" {
		return fetch.JobDescription(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	}

	// Fall back to stdin when piped.
	info, err := os.Stdin.Stat()
	if err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return "", fmt.Errorf("failed to read stdin: %w", readErr)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no job description provided: pass it as an argument or use --job / --job-url")
}

func databaseURLFrom(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return os.Getenv("DATABASE_URL")
}
