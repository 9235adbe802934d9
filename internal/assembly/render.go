package assembly

import (
	"fmt"
	"strings"

	"github.com/jonathan/deep-job-seek/internal/types"
)

// RenderMarkdown produces a human-readable Markdown rendering of a resume
// document. It is a pure function of the document's fields and tolerates
// missing optional fields by rendering "N/A" placeholders.
func RenderMarkdown(resume *types.Resume) string {
	var out []string

	basics := resume.Basics
	out = append(out, fmt.Sprintf("# %s", orNA(basics.Name)))
	out = append(out, fmt.Sprintf("%s | %s", orNA(basics.Email), orNA(basics.Phone)))
	out = append(out, fmt.Sprintf("\n**Summary:** %s", orNA(basics.Summary)))

	if len(resume.Work) > 0 {
		out = append(out, "\n## Work Experience")
		for _, work := range resume.Work {
			out = append(out, fmt.Sprintf("\n### %s at %s", orNA(work.Position), orNA(work.Company)))
			endDate := work.EndDate
			if endDate == "" {
				endDate = "Present"
			}
			out = append(out, fmt.Sprintf("*%s - %s*", orNA(work.StartDate), endDate))
			out = append(out, fmt.Sprintf("\n%s", orNA(work.Summary)))
			if len(work.Highlights) > 0 {
				out = append(out, "\n**Key Achievements:**")
				for _, highlight := range work.Highlights {
					out = append(out, fmt.Sprintf("- %s", highlight))
				}
			}
		}
	}

	if len(resume.Skills) > 0 {
		out = append(out, "\n## Skills")
		names := make([]string, len(resume.Skills))
		for i, skill := range resume.Skills {
			names[i] = skill.Name
		}
		out = append(out, strings.Join(names, ", "))
	}

	if len(resume.Projects) > 0 {
		out = append(out, "\n## Projects")
		for _, project := range resume.Projects {
			out = append(out, fmt.Sprintf("\n### %s", orNA(project.Name)))
			out = append(out, orNA(project.Description))
			for _, highlight := range project.Highlights {
				out = append(out, fmt.Sprintf("- %s", highlight))
			}
		}
	}

	return strings.Join(out, "\n")
}

// orNA substitutes a placeholder for empty optional fields.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
