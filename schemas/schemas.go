// Package schemas embeds the JSON Schema files used to validate generated
// resume documents.
package schemas

import _ "embed"

// ResumeSchema is the JSON Resume document schema (v1.0.0 subset covering the
// fields this tool emits).
//
//go:embed resume.schema.json
var ResumeSchema string
