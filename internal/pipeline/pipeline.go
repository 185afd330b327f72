// Package pipeline orchestrates a full resume analysis: extraction, field
// parsing, keyword matching, scoring, and optional enrichment.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"resume-ats/internal/extract"
	"resume-ats/internal/insight"
	"resume-ats/internal/keywords"
	"resume-ats/internal/parse"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/telemetry"
)

// MaxDocumentBytes is the upload size ceiling.
const MaxDocumentBytes = 5 << 20

const defaultInsightTimeout = 60 * time.Second

// Analyzer runs the analysis pipeline. A nil Insight disables enrichment.
type Analyzer struct {
	Taxonomy       *keywords.Taxonomy
	Scoring        scoring.Config
	Insight        insight.Client
	InsightTimeout time.Duration
}

// NewAnalyzer builds an analyzer with default scoring. insightClient may be nil.
func NewAnalyzer(taxonomy *keywords.Taxonomy, insightClient insight.Client, insightTimeout time.Duration) *Analyzer {
	return &Analyzer{
		Taxonomy:       taxonomy,
		Scoring:        scoring.DefaultConfig(),
		Insight:        insightClient,
		InsightTimeout: insightTimeout,
	}
}

// Analyze validates doc and runs the pipeline over it.
func (a *Analyzer) Analyze(ctx context.Context, doc RawDocument) (Result, error) {
	if err := a.validate(doc); err != nil {
		return Result{}, err
	}
	return a.run(ctx, doc)
}

// Reanalyze runs the pipeline over an already stored document. Validation is
// skipped: the document was accepted at upload time.
func (a *Analyzer) Reanalyze(ctx context.Context, doc RawDocument) (Result, error) {
	return a.run(ctx, doc)
}

func (a *Analyzer) validate(doc RawDocument) error {
	if len(doc.Data) == 0 {
		return &ValidationError{Reason: "document is empty"}
	}
	if len(doc.Data) > MaxDocumentBytes {
		return &ValidationError{Reason: fmt.Sprintf("document exceeds %d bytes", MaxDocumentBytes)}
	}
	if !extract.Supported(doc.MimeType) {
		return &ValidationError{Reason: fmt.Sprintf("unsupported document type %q", doc.MimeType)}
	}
	return nil
}

func (a *Analyzer) run(ctx context.Context, doc RawDocument) (Result, error) {
	metrics.IncAnalysisStarted()
	started := time.Now()

	text, err := extract.Extract(doc.Data, doc.MimeType)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, err
	}

	var (
		parsed     parse.Parsed
		matched    []string
		summary    insight.Summary
		enrichErr  error
		enrichSkip = a.Insight == nil
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		parsed = parse.Parse(text)
		return nil
	})
	g.Go(func() error {
		matched = a.Taxonomy.Match(text)
		return nil
	})
	if !enrichSkip {
		g.Go(func() error {
			// Enrichment failures degrade the result, they never fail the run.
			ectx, cancel := context.WithTimeout(gctx, a.insightTimeout())
			defer cancel()
			summary, enrichErr = a.Insight.Enrich(ectx, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, err
	}

	score, tips := a.Scoring.Score(scoring.Signals{
		Info:            parsed.Info,
		ExperienceCount: len(parsed.Experience),
		EducationCount:  len(parsed.Education),
		SkillCount:      len(parsed.Skills),
		KeywordCount:    len(matched),
		TaxonomySize:    a.Taxonomy.Size(),
	})

	result := Result{
		Score:           score,
		Recommendations: tips,
		Skills:          parsed.Skills,
		Experience:      parsed.Experience,
		Education:       parsed.Education,
		Keywords:        matched,
	}
	if parsed.Info != (parse.PersonalInfo{}) {
		info := parsed.Info
		result.PersonalInfo = &info
	}

	switch {
	case enrichSkip:
	case enrichErr != nil:
		metrics.IncEnrichmentFailed()
		telemetry.Warn("enrichment degraded", map[string]any{
			"file_name": doc.FileName,
			"error":     enrichErr.Error(),
		})
	default:
		result.Summary = summary.Summary
		result.JobMatches = summary.JobMatches
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	return result, nil
}

func (a *Analyzer) insightTimeout() time.Duration {
	if a.InsightTimeout > 0 {
		return a.InsightTimeout
	}
	return defaultInsightTimeout
}
