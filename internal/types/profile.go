// Package types provides type definitions for structured data used throughout the deep-job-seek system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Basics holds a person's contact information and summary line.
// The same shape is used for corpus profiles and generated resumes.
type Basics struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Summary string `json:"summary"`
}

// CandidateProfile represents one person's full history in the profile corpus.
// Profiles are loaded once at startup and never mutated.
type CandidateProfile struct {
	Basics   Basics      `json:"basics"`
	Work     []WorkEntry `json:"work"`
	Skills   []string    `json:"skills"`
	Projects []Project   `json:"projects"`
}

// WorkEntry represents one job held by one candidate.
// Field names follow the JSON Resume schema ("name" is the company name).
type WorkEntry struct {
	Company    string   `json:"name"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Project represents a personal or professional project.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	URL         string   `json:"url,omitempty"`
}

// Experience is a work entry flattened out of its owning profile for ranking.
// It keeps a back-reference to the owner's name and skills; structural nesting
// is lost on purpose.
type Experience struct {
	Person     string   `json:"person"`
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Skills     []string `json:"skills"`
}

// SearchText builds the searchable string used for embedding: position,
// summary, and space-joined highlights.
func (e *Experience) SearchText() string {
	return e.Position + " " + e.Summary + " " + strings.Join(e.Highlights, " ")
}
