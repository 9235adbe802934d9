package types

// SchemaURL is the JSON Resume schema version every generated document declares.
const SchemaURL = "https://raw.githubusercontent.com/jsonresume/resume-schema/v1.0.0/schema.json"

// Resume is the generated output document, conformant to the JSON Resume schema.
// It is constructed fresh per request and never mutated after return.
type Resume struct {
	Schema    string      `json:"$schema"`
	Metadata  *Metadata   `json:"_metadata,omitempty"`
	Basics    Basics      `json:"basics"`
	Work      []WorkEntry `json:"work"`
	Skills    []Skill     `json:"skills"`
	Projects  []Project   `json:"projects"`
	Education []Education `json:"education"`
}

// Metadata carries informational generation details. Consumers may ignore it.
type Metadata struct {
	GeneratedAt  string `json:"generated_at"`
	Generator    string `json:"generator"`
	Model        string `json:"model"`
	GenerationID string `json:"generation_id,omitempty"`
}

// Skill is a normalized skill record. Skills are always name/level pairs in
// generated documents, never bare strings.
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Education represents one education record.
type Education struct {
	Institution string `json:"institution"`
	Area        string `json:"area"`
	StudyType   string `json:"studyType"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}
