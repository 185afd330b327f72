package resumes

import (
	"time"

	"resume-ats/internal/pipeline"
)

type resumeResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type analysisResponse struct {
	ID        string          `json:"id"`
	ResumeID  string          `json:"resumeId"`
	Result    pipeline.Result `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}

type analyzeResponse struct {
	Resume   resumeResponse   `json:"resume"`
	Analysis analysisResponse `json:"analysis"`
}

type listResponse struct {
	Resumes []resumeResponse `json:"resumes"`
}

func toResumeResponse(resume Resume) resumeResponse {
	return resumeResponse{
		ID:         resume.ID,
		FileName:   resume.FileName,
		MimeType:   resume.MimeType,
		SizeBytes:  resume.SizeBytes,
		UploadedAt: resume.UploadedAt,
	}
}

func toAnalysisResponse(analysis Analysis) analysisResponse {
	return analysisResponse{
		ID:        analysis.ID,
		ResumeID:  analysis.ResumeID,
		Result:    analysis.Result,
		CreatedAt: analysis.CreatedAt,
	}
}
