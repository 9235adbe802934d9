// Package pipeline orchestrates the resume generation flow:
// extract requirements, rank experiences, synthesize a summary, and assemble
// the final document. One request runs one synchronous pipeline pass.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/deep-job-seek/internal/assembly"
	"github.com/jonathan/deep-job-seek/internal/corpus"
	"github.com/jonathan/deep-job-seek/internal/extraction"
	"github.com/jonathan/deep-job-seek/internal/ranking"
	"github.com/jonathan/deep-job-seek/internal/summary"
	"github.com/jonathan/deep-job-seek/internal/types"
)

// DefaultTopK is how many ranked experiences are considered for assembly.
// The assembler keeps the top 3 for the work section but pools skills across
// all of them.
const DefaultTopK = 5

// Capability bundles the two external model capabilities the pipeline needs.
type Capability interface {
	ranking.Embedder
	summary.Generator
}

// InputError reports an unusable job description. The pipeline does not run
// and no external capability is invoked.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Runner holds process-wide pipeline state: the capability client and the
// embedding index over the static corpus. The index is computed once at
// construction and immutable afterwards, so a Runner is safe for concurrent
// use.
type Runner struct {
	capability Capability
	index      *ranking.Index
	model      string
	Verbose    bool
}

// Result is the outcome of one pipeline run.
type Result struct {
	Resume       *types.Resume      `json:"resume"`
	Requirements []string           `json:"requirements"`
	Matches      []types.Experience `json:"matches"`
	// SkillFit is the fraction of extracted requirements covered by the
	// assembled candidate's skills. Informational only.
	SkillFit float64 `json:"skill_fit"`
}

// New builds a Runner, embedding the static corpus up front. model records
// the generation model identity in output metadata.
func New(ctx context.Context, capability Capability, model string) (*Runner, error) {
	index, err := ranking.NewIndex(ctx, capability, corpus.FlattenExperiences())
	if err != nil {
		return nil, fmt.Errorf("failed to build corpus index: %w", err)
	}

	return &Runner{
		capability: capability,
		index:      index,
		model:      model,
	}, nil
}

// Run executes the full pipeline for one job description. On embedding
// failure no partial document is returned; generation failure is recovered
// internally via the deterministic summary fallback.
func (r *Runner) Run(ctx context.Context, jobDescription string, topK int) (*Result, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &InputError{Message: "please enter a job description"}
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	requirements := extraction.KeyRequirements(jobDescription)
	if r.Verbose {
		log.Printf("[VERBOSE] Extracted %d requirement labels: %v", len(requirements), requirements)
	}

	matches, err := r.index.Rank(ctx, jobDescription, topK)
	if err != nil {
		return nil, err
	}
	if r.Verbose {
		log.Printf("[VERBOSE] Ranked %d of %d experiences", len(matches), r.index.Len())
	}

	summaryText := summary.Synthesize(ctx, r.capability, jobDescription, requirements)

	resume := assembly.FromMatches(matches, summaryText, r.model)

	skillNames := make([]string, len(resume.Skills))
	for i, skill := range resume.Skills {
		skillNames[i] = skill.Name
	}

	return &Result{
		Resume:       resume,
		Requirements: requirements,
		Matches:      matches,
		SkillFit:     extraction.OverlapScore(requirements, skillNames),
	}, nil
}
