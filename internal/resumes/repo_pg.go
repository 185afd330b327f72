package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-ats/internal/pipeline"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateResume inserts a new resume row.
func (r *PGRepo) CreateResume(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, file_name, mime_type, size_bytes, storage_key, checksum, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.FileName,
		resume.MimeType,
		resume.SizeBytes,
		resume.StorageKey,
		resume.Checksum,
		resume.UploadedAt,
	)
	return err
}

// GetResume returns a resume by its ID.
func (r *PGRepo) GetResume(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_key, checksum, uploaded_at
FROM resumes
WHERE id = $1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&resume.ID,
		&resume.FileName,
		&resume.MimeType,
		&resume.SizeBytes,
		&resume.StorageKey,
		&resume.Checksum,
		&resume.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Resume{}, ErrNotFound
	}
	if err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// ListResumes returns resumes ordered by upload time, newest first.
func (r *PGRepo) ListResumes(ctx context.Context, limit, offset int) ([]Resume, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_key, checksum, uploaded_at
FROM resumes
ORDER BY uploaded_at DESC, id DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.FileName,
			&resume.MimeType,
			&resume.SizeBytes,
			&resume.StorageKey,
			&resume.Checksum,
			&resume.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// CreateAnalysis inserts a new analysis row with its result as JSONB.
func (r *PGRepo) CreateAnalysis(ctx context.Context, analysis Analysis) error {
	payload, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	const query = `
INSERT INTO analyses (id, resume_id, result, created_at)
VALUES ($1, $2, $3, $4)`
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.ResumeID,
		payload,
		analysis.CreatedAt,
	)
	return err
}

// LatestAnalysis returns the most recently created analysis for a resume.
func (r *PGRepo) LatestAnalysis(ctx context.Context, resumeID string) (Analysis, error) {
	const query = `
SELECT id, resume_id, result, created_at
FROM analyses
WHERE resume_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`
	var (
		analysis Analysis
		payload  []byte
	)
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&analysis.ID,
		&analysis.ResumeID,
		&payload,
		&analysis.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, err
	}
	var result pipeline.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Analysis{}, fmt.Errorf("unmarshal result: %w", err)
	}
	analysis.Result = result
	return analysis, nil
}

var _ Repo = (*PGRepo)(nil)
