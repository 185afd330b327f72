package resumes

import (
	"time"

	"resume-ats/internal/pipeline"
)

// Resume is an uploaded document and its storage metadata.
type Resume struct {
	ID         string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	Checksum   string
	UploadedAt time.Time
}

// Analysis is one pipeline run over a resume. A resume accumulates analyses
// over time; the latest one is authoritative.
type Analysis struct {
	ID        string
	ResumeID  string
	Result    pipeline.Result
	CreatedAt time.Time
}
