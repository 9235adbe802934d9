package assembly

import "github.com/jonathan/deep-job-seek/internal/types"

// Validate reports whether a resume document has the essential fields: a
// non-empty basics name and email, and a non-empty work section where every
// entry carries both a company name and a position. This is the single
// canonical validator for the document shape; it never raises.
func Validate(resume *types.Resume) bool {
	if resume == nil {
		return false
	}
	if resume.Basics.Name == "" || resume.Basics.Email == "" {
		return false
	}
	if len(resume.Work) == 0 {
		return false
	}
	for _, work := range resume.Work {
		if work.Company == "" || work.Position == "" {
			return false
		}
	}
	return true
}
