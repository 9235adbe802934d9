// Package extraction provides keyword-based requirement extraction from job description text.
// Matching is a fixed keyword/pattern lookup, not inferred from text structure;
// correctness is defined relative to the fixed tables below.
package extraction

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxRequirements caps the number of labels returned per job description.
const MaxRequirements = 10

// techKeywords is the closed vocabulary of recognized technology and practice
// terms. Matching is substring-based, so "go" matches inside "good"; callers
// accept that false-positive risk.
var techKeywords = []string{
	// Programming languages
	"python", "javascript", "java", "typescript", "go", "rust", "c++", "c#", "php", "ruby",

	// Frameworks and libraries
	"react", "angular", "vue", "flask", "django", "fastapi", "express", "spring", "laravel",

	// Databases
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "qdrant", "pinecone",

	// Cloud and infrastructure
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "gitlab",

	// Tools and technologies
	"git", "linux", "api", "rest", "graphql", "microservices", "ci/cd", "devops",

	// Data and AI
	"machine learning", "data science", "tensorflow", "pytorch", "pandas", "numpy",

	// Practices
	"agile", "scrum", "testing", "security", "performance", "monitoring",
}

// experiencePatterns are tried in order; the first match wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:in|with)`),
	regexp.MustCompile(`minimum\s+(\d+)\s+years?`),
	regexp.MustCompile(`at\s+least\s+(\d+)\s+years?`),
	// Bare "N+ years" mentions, e.g. "5+ years, Docker expertise". The
	// explicit plus keeps unrelated numbers from matching.
	regexp.MustCompile(`(\d+)\+\s*years?`),
}

// degreePatterns all map to the single "Degree Required" label; degree levels
// are not distinguished.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`bachelor.?s?\s+degree`),
	regexp.MustCompile(`master.?s?\s+degree`),
	regexp.MustCompile(`phd`),
	regexp.MustCompile(`computer\s+science`),
	regexp.MustCompile(`engineering\s+degree`),
}

var titleCaser = cases.Title(language.English)

// KeyRequirements extracts recognized requirement labels from a job
// description. It returns at most MaxRequirements deduplicated labels in
// first-seen order. Empty input yields an empty list; there are no error
// conditions.
func KeyRequirements(jobDescription string) []string {
	jobLower := strings.ToLower(jobDescription)
	if strings.TrimSpace(jobLower) == "" {
		return nil
	}

	var found []string
	for _, keyword := range techKeywords {
		if strings.Contains(jobLower, keyword) {
			found = append(found, titleCaser.String(keyword))
		}
	}

	for _, pattern := range experiencePatterns {
		if match := pattern.FindStringSubmatch(jobLower); match != nil {
			found = append(found, match[1]+"+ Years Experience")
			break
		}
	}

	for _, pattern := range degreePatterns {
		if pattern.MatchString(jobLower) {
			found = append(found, "Degree Required")
			break
		}
	}

	return dedupe(found, MaxRequirements)
}

// OverlapScore calculates how much of a requirement list a skill list covers,
// as a fraction in [0, 1]. A requirement counts as covered when it and a skill
// contain each other as case-insensitive substrings.
func OverlapScore(requirements, skills []string) float64 {
	if len(requirements) == 0 || len(skills) == 0 {
		return 0.0
	}

	skillsLower := make([]string, len(skills))
	for i, skill := range skills {
		skillsLower[i] = strings.ToLower(skill)
	}

	matches := 0
	for _, req := range requirements {
		reqLower := strings.ToLower(req)
		for _, skill := range skillsLower {
			if strings.Contains(skill, reqLower) || strings.Contains(reqLower, skill) {
				matches++
				break
			}
		}
	}

	score := float64(matches) / float64(len(requirements))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// dedupe removes duplicate labels keeping first-seen order, capped at max.
func dedupe(labels []string, max int) []string {
	seen := make(map[string]bool, len(labels))
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		if seen[label] {
			continue
		}
		seen[label] = true
		result = append(result, label)
		if len(result) == max {
			break
		}
	}
	return result
}
