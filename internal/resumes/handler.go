package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/extract"
	"resume-ats/internal/pipeline"
	"resume-ats/internal/shared/server/respond"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	// Multipart framing overhead on top of the document itself.
	maxRequestBytes = pipeline.MaxDocumentBytes + 64<<10
)

// Handler exposes the resume HTTP API.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the resume endpoints on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.analyze)
	rg.GET("/resumes", h.list)
	rg.POST("/resumes/:id/reanalyze", h.reanalyze)
	rg.GET("/resumes/:id/analysis", h.latestAnalysis)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart field 'resume' is required", nil)
		return
	}
	if fileHeader.Size > pipeline.MaxDocumentBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document exceeds the size limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded file", nil)
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	resume, analysis, err := h.svc.Analyze(c.Request.Context(), fileHeader.Filename, mimeType, file)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, analyzeResponse{
		Resume:   toResumeResponse(resume),
		Analysis: toAnalysisResponse(analysis),
	})
}

func (h *Handler) list(c *gin.Context) {
	limit := intQuery(c, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	resumes, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	out := make([]resumeResponse, 0, len(resumes))
	for _, resume := range resumes {
		out = append(out, toResumeResponse(resume))
	}
	respond.OK(c, listResponse{Resumes: out})
}

func (h *Handler) reanalyze(c *gin.Context) {
	analysis, err := h.svc.Reanalyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAnalysisError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toAnalysisResponse(analysis))
}

func (h *Handler) latestAnalysis(c *gin.Context) {
	analysis, err := h.svc.LatestAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no analysis for this resume", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load analysis", nil)
		return
	}
	respond.OK(c, toAnalysisResponse(analysis))
}

func respondAnalysisError(c *gin.Context, err error) {
	var verr *pipeline.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", verr.Reason, nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported document type", nil)
	case errors.Is(err, extract.ErrCorruptDocument):
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "document could not be parsed", nil)
	case errors.Is(err, extract.ErrEmptyContent):
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_error", "document contains no extractable text", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
