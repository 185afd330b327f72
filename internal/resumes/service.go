package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-ats/internal/pipeline"
	"resume-ats/internal/shared/storage/object"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/shared/util"
)

// Service coordinates analysis, object storage, and persistence.
type Service struct {
	store    object.ObjectStore
	repo     Repo
	analyzer *pipeline.Analyzer
}

// NewService constructs a Service.
func NewService(store object.ObjectStore, repo Repo, analyzer *pipeline.Analyzer) *Service {
	return &Service{store: store, repo: repo, analyzer: analyzer}
}

// Analyze runs the pipeline over an uploaded document and, on success,
// persists both the document and its analysis. Rejected documents leave no
// trace in storage.
func (s *Service) Analyze(ctx context.Context, fileName, mimeType string, r io.Reader) (Resume, Analysis, error) {
	data, err := io.ReadAll(io.LimitReader(r, pipeline.MaxDocumentBytes+1))
	if err != nil {
		return Resume{}, Analysis{}, fmt.Errorf("read upload: %w", err)
	}

	result, err := s.analyzer.Analyze(ctx, pipeline.RawDocument{
		Data:     data,
		MimeType: mimeType,
		FileName: fileName,
	})
	if err != nil {
		return Resume{}, Analysis{}, err
	}

	storageKey, sizeBytes, _, err := s.store.Save(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, Analysis{}, fmt.Errorf("store document: %w", err)
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:         uuid.NewString(),
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  sizeBytes,
		StorageKey: storageKey,
		Checksum:   util.Checksum(data),
		UploadedAt: now,
	}
	if err := s.repo.CreateResume(ctx, resume); err != nil {
		return Resume{}, Analysis{}, fmt.Errorf("persist resume: %w", err)
	}

	analysis := Analysis{
		ID:        uuid.NewString(),
		ResumeID:  resume.ID,
		Result:    result,
		CreatedAt: now,
	}
	if err := s.repo.CreateAnalysis(ctx, analysis); err != nil {
		return Resume{}, Analysis{}, fmt.Errorf("persist analysis: %w", err)
	}

	telemetry.Info("resume analyzed", map[string]any{
		"resume_id": resume.ID,
		"file_name": resume.FileName,
		"score":     result.Score,
	})
	return resume, analysis, nil
}

// Reanalyze re-runs the pipeline over a stored document and records a new
// analysis. The stored bytes are used as-is; upload validation is not repeated.
func (s *Service) Reanalyze(ctx context.Context, resumeID string) (Analysis, error) {
	resume, err := s.repo.GetResume(ctx, resumeID)
	if err != nil {
		return Analysis{}, err
	}

	rc, err := s.store.Open(ctx, resume.StorageKey)
	if err != nil {
		return Analysis{}, fmt.Errorf("open stored document: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Analysis{}, fmt.Errorf("read stored document: %w", err)
	}

	result, err := s.analyzer.Reanalyze(ctx, pipeline.RawDocument{
		Data:     data,
		MimeType: resume.MimeType,
		FileName: resume.FileName,
	})
	if err != nil {
		return Analysis{}, err
	}

	analysis := Analysis{
		ID:        uuid.NewString(),
		ResumeID:  resume.ID,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateAnalysis(ctx, analysis); err != nil {
		return Analysis{}, fmt.Errorf("persist analysis: %w", err)
	}

	telemetry.Info("resume reanalyzed", map[string]any{
		"resume_id": resume.ID,
		"score":     result.Score,
	})
	return analysis, nil
}

// List returns stored resumes, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Resume, error) {
	return s.repo.ListResumes(ctx, limit, offset)
}

// LatestAnalysis returns the most recent analysis for a resume.
func (s *Service) LatestAnalysis(ctx context.Context, resumeID string) (Analysis, error) {
	return s.repo.LatestAnalysis(ctx, resumeID)
}
