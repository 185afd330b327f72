// Package scoring turns parsed resume signals into a 0-100 readiness score
// with tiered recommendations.
package scoring

import (
	"math"

	"resume-ats/internal/parse"
)

// Config holds the scoring weights. The default weights sum to 100; callers
// that tune them keep that property themselves since each sub-score is
// clamped to its own weight.
type Config struct {
	ContactWeight   int
	StructureWeight int
	KeywordWeight   int
	// DensityKnee is the taxonomy-match fraction at which keyword density
	// stops paying off steeply. Must be in (0, 1).
	DensityKnee float64
}

// DefaultConfig returns the standard weighting.
func DefaultConfig() Config {
	return Config{
		ContactWeight:   40,
		StructureWeight: 35,
		KeywordWeight:   25,
		DensityKnee:     0.25,
	}
}

// Signals are the countable facts scoring operates on. Scoring never looks at
// raw text.
type Signals struct {
	Info            parse.PersonalInfo
	ExperienceCount int
	EducationCount  int
	SkillCount      int
	KeywordCount    int
	TaxonomySize    int
}

const (
	experienceTarget = 3
	educationTarget  = 2
	skillTarget      = 10
)

// Score computes the total score and the recommendation tier for sig.
// The result is always in [0, 100].
func (c Config) Score(sig Signals) (int, []string) {
	total := c.contactScore(sig.Info) + c.structureScore(sig) + c.keywordScore(sig)
	score := clampInt(int(math.Round(total)), 0, 100)
	return score, tipsFor(score)
}

// contactScore pays an equal share of the contact weight per present field.
func (c Config) contactScore(info parse.PersonalInfo) float64 {
	present := 0
	for _, field := range []string{info.Name, info.Email, info.Phone, info.Location} {
		if field != "" {
			present++
		}
	}
	return clamp(float64(c.ContactWeight)*float64(present)/4, 0, float64(c.ContactWeight))
}

// structureScore rewards experience and education entries up to a target
// count, with experience weighted heavier.
func (c Config) structureScore(sig Signals) float64 {
	w := float64(c.StructureWeight)
	exp := float64(minInt(sig.ExperienceCount, experienceTarget)) / experienceTarget
	edu := float64(minInt(sig.EducationCount, educationTarget)) / educationTarget
	return clamp(w*(0.6*exp+0.4*edu), 0, w)
}

// keywordScore blends taxonomy match density with skill count. Density gains
// are steep up to the knee and shallow past it, so a resume cannot buy a top
// score through keyword stuffing alone.
func (c Config) keywordScore(sig Signals) float64 {
	w := float64(c.KeywordWeight)
	density := 0.0
	if sig.TaxonomySize > 0 {
		density = clamp(float64(sig.KeywordCount)/float64(sig.TaxonomySize), 0, 1)
	}
	skills := float64(minInt(sig.SkillCount, skillTarget)) / skillTarget
	return clamp(w*(0.6*c.shapeDensity(density)+0.4*skills), 0, w)
}

func (c Config) shapeDensity(d float64) float64 {
	knee := c.DensityKnee
	if knee <= 0 || knee >= 1 {
		knee = DefaultConfig().DensityKnee
	}
	if d <= knee {
		return 0.8 * d / knee
	}
	return 0.8 + 0.2*(d-knee)/(1-knee)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
