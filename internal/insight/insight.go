// Package insight defines the optional language-model enrichment layer.
// Enrichment adds narrative context on top of the deterministic analysis and
// is always safe to skip.
package insight

import (
	"context"
	"errors"
)

// Client abstracts enrichment providers.
type Client interface {
	Enrich(ctx context.Context, resumeText string) (Summary, error)
}

// Summary is the provider's structured read of a resume.
type Summary struct {
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	JobMatches []string          `json:"jobMatches"`
	Summary    string            `json:"summary"`
}

// ExperienceEntry is one role in the provider's summary.
type ExperienceEntry struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Duration   string   `json:"duration"`
	Highlights []string `json:"highlights"`
}

// EducationEntry is one qualification in the provider's summary.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

var (
	// ErrProviderUnavailable reports that the provider could not be reached,
	// including timeouts.
	ErrProviderUnavailable = errors.New("insight provider unavailable")
	// ErrProviderError reports that the provider answered with an error.
	ErrProviderError = errors.New("insight provider error")
	// ErrMalformedResponse reports a provider answer that could not be decoded.
	ErrMalformedResponse = errors.New("insight response malformed")
)
