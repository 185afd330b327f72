package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu         sync.RWMutex
	byID       map[string]Resume
	analysesBy map[string][]Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:       make(map[string]Resume),
		analysesBy: make(map[string][]Analysis),
	}
}

// CreateResume stores the resume.
func (r *MemoryRepo) CreateResume(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[resume.ID] = resume
	return nil
}

// GetResume returns a resume by its ID.
func (r *MemoryRepo) GetResume(ctx context.Context, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[resumeID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// ListResumes returns resumes ordered by upload time, newest first.
func (r *MemoryRepo) ListResumes(ctx context.Context, limit, offset int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	all := make([]Resume, 0, len(r.byID))
	for _, resume := range r.byID {
		all = append(all, resume)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].UploadedAt.Equal(all[j].UploadedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].UploadedAt.After(all[j].UploadedAt)
	})

	if offset >= len(all) {
		return []Resume{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// CreateAnalysis stores the analysis under its resume.
func (r *MemoryRepo) CreateAnalysis(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[analysis.ResumeID]; !ok {
		return ErrNotFound
	}
	r.analysesBy[analysis.ResumeID] = append(r.analysesBy[analysis.ResumeID], analysis)
	return nil
}

// LatestAnalysis returns the most recently created analysis for a resume.
func (r *MemoryRepo) LatestAnalysis(ctx context.Context, resumeID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.analysesBy[resumeID]
	if len(list) == 0 {
		return Analysis{}, ErrNotFound
	}
	return list[len(list)-1], nil
}

var _ Repo = (*MemoryRepo)(nil)
