// Package summary synthesizes a short professional summary from a job
// description and extracted requirements via an external text-generation
// capability, with a deterministic fallback on any failure.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/deep-job-seek/internal/llm"
)

const (
	// maxJobChars bounds how much of the job description enters the prompt.
	maxJobChars = 200
	// maxSummaryChars hard-caps the synthesized summary.
	maxSummaryChars = 200
	// maxPromptRequirements bounds how many requirement labels enter the prompt.
	maxPromptRequirements = 5
	// summaryMarker delimits the generated summary inside raw model output.
	summaryMarker = "Summary:"
)

// Generator is the external text-generation capability.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Synthesize produces a one-sentence professional summary for the job
// description. Any failure of the generation capability is replaced with a
// deterministic templated fallback; Synthesize itself never fails.
func Synthesize(ctx context.Context, generator Generator, jobText string, requirements []string) string {
	prompt := buildPrompt(jobText, requirements)

	raw, err := generator.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return Fallback(requirements)
	}

	return postProcess(raw, prompt)
}

// Fallback builds the deterministic templated summary from the first 3
// requirement labels. It must never fail.
func Fallback(requirements []string) string {
	labels := requirements
	if len(labels) > 3 {
		labels = labels[:3]
	}
	return fmt.Sprintf(
		"Experienced professional with expertise in %s seeking to contribute to innovative projects and drive business success.",
		strings.Join(labels, ", "),
	)
}

// buildPrompt constructs the bounded generation prompt.
func buildPrompt(jobText string, requirements []string) string {
	if len(jobText) > maxJobChars {
		jobText = jobText[:maxJobChars]
	}
	labels := requirements
	if len(labels) > maxPromptRequirements {
		labels = labels[:maxPromptRequirements]
	}
	return fmt.Sprintf(
		"Professional summary for a candidate applying to: %s... Key requirements: %s. %s",
		jobText, strings.Join(labels, ", "), summaryMarker,
	)
}

// postProcess trims the raw generation down to one bounded sentence.
func postProcess(raw, prompt string) string {
	var text string
	if idx := strings.LastIndex(raw, summaryMarker); idx >= 0 {
		text = strings.TrimSpace(raw[idx+len(summaryMarker):])
	} else {
		text = strings.TrimSpace(strings.ReplaceAll(raw, prompt, ""))
	}

	// Keep only the first sentence when a period exists.
	if idx := strings.Index(text, "."); idx >= 0 {
		text = text[:idx+1]
	}

	if len(text) > maxSummaryChars {
		text = text[:maxSummaryChars]
	}
	return text
}
