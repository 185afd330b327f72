package pipeline

import "resume-ats/internal/parse"

// RawDocument is an uploaded document before any processing.
type RawDocument struct {
	Data     []byte
	MimeType string
	FileName string
}

// Result is the complete analysis of one document. Summary and JobMatches are
// present only when enrichment succeeded.
type Result struct {
	Score           int                 `json:"score"`
	Recommendations []string            `json:"recommendations"`
	PersonalInfo    *parse.PersonalInfo `json:"personal_info,omitempty"`
	Skills          []string            `json:"skills"`
	Experience      []parse.Entry       `json:"experience"`
	Education       []parse.Entry       `json:"education"`
	Keywords        []string            `json:"keywords,omitempty"`
	Summary         string              `json:"summary,omitempty"`
	JobMatches      []string            `json:"job_matches,omitempty"`
}
