// Package assembly combines ranked work experiences, deduplicated skills, and
// a synthesized summary into a JSON Resume schema conformant document.
package assembly

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/deep-job-seek/internal/types"
)

// GeneratorName identifies this tool in generated document metadata.
const GeneratorName = "Deep Job Seek"

// SkillLevel is the level every assembled skill entry is wrapped with.
const SkillLevel = "Advanced"

const (
	maxWorkEntries = 3
	maxHighlights  = 3
	maxSkills      = 10

	// Placeholder dates for assembled work entries. These are NOT derived from
	// the real corpus data; the most relevant match gets the newer end date.
	placeholderStartDate = "2020-01-01"
	recentEndDate        = "2023-12-31"
	olderEndDate         = "2020-12-31"
)

// Default basics used when the caller provides none.
const (
	defaultName    = "AI-Generated Candidate"
	defaultEmail   = "candidate@example.com"
	defaultPhone   = "+1-555-0123"
	defaultSummary = "Professional with relevant experience"
)

// timestampLayout matches the generated_at format consumers expect.
const timestampLayout = "20060102-150405"

// FromMatches assembles a resume from ranked experience matches. The top
// maxWorkEntries matches become the work section; skills are pooled across
// ALL provided matches, deduplicated, and capped at maxSkills. The synthesized
// summary lands in basics.summary. model records the generation model identity
// in metadata.
func FromMatches(matches []types.Experience, summaryText, model string) *types.Resume {
	var work []types.WorkEntry
	for i, match := range matches {
		if i == maxWorkEntries {
			break
		}
		endDate := olderEndDate
		if i == 0 {
			endDate = recentEndDate
		}
		highlights := match.Highlights
		if len(highlights) > maxHighlights {
			highlights = highlights[:maxHighlights]
		}
		work = append(work, types.WorkEntry{
			Company:    match.Company,
			Position:   match.Position,
			Summary:    match.Summary,
			Highlights: highlights,
			StartDate:  placeholderStartDate,
			EndDate:    endDate,
		})
	}

	var pooled []string
	for _, match := range matches {
		pooled = append(pooled, match.Skills...)
	}
	skills := dedupeSkills(pooled, maxSkills)

	basics := types.Basics{
		Name:    defaultName,
		Email:   defaultEmail,
		Phone:   defaultPhone,
		Summary: summaryText,
	}

	resume := Build(basics, work, skills, nil)
	resume.Metadata.Model = model
	return resume
}

// Build constructs a complete schema-conformant resume document. Missing
// basics fields are filled with defaults, skills are wrapped as name/level
// pairs, projects default to empty, and exactly one placeholder education
// record is always appended.
func Build(basics types.Basics, work []types.WorkEntry, skills []string, projects []types.Project) *types.Resume {
	if basics.Name == "" {
		basics.Name = defaultName
	}
	if basics.Email == "" {
		basics.Email = defaultEmail
	}
	if basics.Phone == "" {
		basics.Phone = defaultPhone
	}
	if basics.Summary == "" {
		basics.Summary = defaultSummary
	}

	if work == nil {
		work = []types.WorkEntry{}
	}
	if projects == nil {
		projects = []types.Project{}
	}

	wrapped := make([]types.Skill, 0, len(skills))
	for _, skill := range skills {
		wrapped = append(wrapped, types.Skill{Name: skill, Level: SkillLevel})
	}

	return &types.Resume{
		Schema: types.SchemaURL,
		Metadata: &types.Metadata{
			GeneratedAt:  time.Now().Format(timestampLayout),
			Generator:    GeneratorName,
			GenerationID: uuid.NewString(),
		},
		Basics:   basics,
		Work:     work,
		Skills:   wrapped,
		Projects: projects,
		Education: []types.Education{
			{
				Institution: "University of Technology",
				Area:        "Computer Science",
				StudyType:   "Bachelor of Science",
				StartDate:   "2015-09-01",
				EndDate:     "2019-05-31",
			},
		},
	}
}

// dedupeSkills removes duplicates keeping first-seen order, capped at max.
func dedupeSkills(skills []string, max int) []string {
	seen := make(map[string]bool, len(skills))
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		result = append(result, skill)
		if len(result) == max {
			break
		}
	}
	return result
}
