package resumes

import "context"

// Repo defines persistence operations for resumes and their analyses.
type Repo interface {
	CreateResume(ctx context.Context, resume Resume) error
	GetResume(ctx context.Context, resumeID string) (Resume, error)
	ListResumes(ctx context.Context, limit, offset int) ([]Resume, error)
	CreateAnalysis(ctx context.Context, analysis Analysis) error
	LatestAnalysis(ctx context.Context, resumeID string) (Analysis, error)
}
