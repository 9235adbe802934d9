// Package parsing provides a best-effort parser that turns plain text,
// markdown, or JSON resumes into the structured resume document shape.
// Classification is heuristic (keyword and length based) and carries no
// correctness guarantees; it is a convenience utility outside the
// retrieval/assembly contract.
package parsing

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/jonathan/deep-job-seek/internal/assembly"
	"github.com/jonathan/deep-job-seek/internal/types"
)

const maxParsedSkills = 15

// sectionKeywords maps heading keywords to resume sections.
var sectionKeywords = map[string]string{
	"experience": "work",
	"work":       "work",
	"employment": "work",
	"skills":     "skills",
	"projects":   "projects",
	"education":  "education",
	"summary":    "summary",
	"about":      "summary",
}

// positionKeywords mark a line as the start of a new work entry.
var positionKeywords = []string{"engineer", "developer", "manager", "analyst", "specialist", "director"}

// ResumeText parses free-text resume content into a structured document.
// JSON input that passes structural validation is accepted as-is; anything
// else goes through heuristic line classification. Empty input returns nil.
func ResumeText(resumeText string) *types.Resume {
	if strings.TrimSpace(resumeText) == "" {
		return nil
	}

	// Try JSON first.
	var jsonResume types.Resume
	if err := json.Unmarshal([]byte(resumeText), &jsonResume); err == nil {
		if assembly.Validate(&jsonResume) {
			return &jsonResume
		}
	}

	lines := nonEmptyLines(resumeText)

	resume := &types.Resume{
		Schema: types.SchemaURL,
		Basics: types.Basics{
			Name:  "User Candidate",
			Email: "user@example.com",
			Phone: "+1-555-0123",
		},
		Work:      []types.WorkEntry{},
		Skills:    []types.Skill{},
		Projects:  []types.Project{},
		Education: []types.Education{},
	}

	// First line that looks like a name (short, no digits) becomes the name.
	if len(lines) > 0 && len(strings.Fields(lines[0])) <= 4 && !containsDigit(lines[0]) {
		resume.Basics.Name = lines[0]
		lines = lines[1:]
	}

	// Sniff email and phone from the first few lines.
	for i, line := range lines {
		if i == 5 {
			break
		}
		if strings.Contains(line, "@") && strings.Contains(line, ".") {
			resume.Basics.Email = line
		} else if containsDigit(line) && (strings.ContainsAny(line, "+-(")) {
			resume.Basics.Phone = line
		}
	}

	var (
		section     string
		currentWork *types.WorkEntry
		currentProj *types.Project
		skillNames  []string
	)

	flushWork := func() {
		if currentWork != nil && currentWork.Position != "" {
			resume.Work = append(resume.Work, *currentWork)
		}
		currentWork = nil
	}
	flushProject := func() {
		if currentProj != nil && currentProj.Name != "" {
			resume.Projects = append(resume.Projects, *currentProj)
		}
		currentProj = nil
	}

	for _, line := range lines {
		lineLower := strings.ToLower(line)

		if found := detectSection(lineLower); found != "" {
			section = found
			continue
		}

		switch section {
		case "summary":
			if resume.Basics.Summary != "" {
				resume.Basics.Summary += " " + line
			} else {
				resume.Basics.Summary = line
			}
		case "work":
			switch {
			case hasAnyKeyword(lineLower, positionKeywords):
				flushWork()
				currentWork = &types.WorkEntry{
					Position:   line,
					Company:    "Company Name",
					Highlights: []string{},
				}
			case currentWork != nil && (strings.Contains(lineLower, "company") || strings.Contains(lineLower, "corp") || strings.Contains(lineLower, "inc")):
				currentWork.Company = line
			case currentWork != nil && isBullet(line):
				currentWork.Highlights = append(currentWork.Highlights, stripBullet(line))
			case currentWork != nil && len(line) > 20:
				currentWork.Summary = line
			}
		case "skills":
			switch {
			case strings.Contains(line, ","):
				for _, skill := range strings.Split(line, ",") {
					skillNames = append(skillNames, strings.TrimSpace(skill))
				}
			case isBullet(line):
				skillNames = append(skillNames, stripBullet(line))
			default:
				skillNames = append(skillNames, line)
			}
		case "projects":
			switch {
			case !isBullet(line) && (currentProj == nil || len(line) <= 10):
				flushProject()
				currentProj = &types.Project{Name: line, Highlights: []string{}}
			case currentProj != nil && isBullet(line):
				currentProj.Highlights = append(currentProj.Highlights, stripBullet(line))
			case currentProj != nil && len(line) > 10:
				currentProj.Description = line
			default:
				flushProject()
				currentProj = &types.Project{Name: line, Highlights: []string{}}
			}
		}
	}

	flushWork()
	flushProject()

	resume.Skills = cleanSkills(skillNames)
	return resume
}

// cleanSkills drops empty or overlong entries, deduplicates, caps the list,
// and normalizes bare strings into name/level records.
func cleanSkills(names []string) []types.Skill {
	seen := make(map[string]bool, len(names))
	skills := make([]types.Skill, 0, len(names))
	for _, name := range names {
		if name == "" || len(name) >= 50 || seen[name] {
			continue
		}
		seen[name] = true
		skills = append(skills, types.Skill{Name: name, Level: assembly.SkillLevel})
		if len(skills) == maxParsedSkills {
			break
		}
	}
	return skills
}

// detectSection returns the section a heading line starts, or "".
func detectSection(lineLower string) string {
	for keyword, section := range sectionKeywords {
		if strings.Contains(lineLower, keyword) &&
			(strings.HasPrefix(lineLower, keyword) || strings.HasSuffix(lineLower, ":")) {
			return section
		}
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func hasAnyKeyword(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")
}

func stripBullet(line string) string {
	return strings.TrimLeft(line, "•- ")
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
