package scoring

import (
	"reflect"
	"testing"

	"resume-ats/internal/parse"
)

func fullSignals() Signals {
	return Signals{
		Info: parse.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "512-555-0143",
			Location: "Austin, Texas",
		},
		ExperienceCount: 3,
		EducationCount:  2,
		SkillCount:      10,
		KeywordCount:    80,
		TaxonomySize:    80,
	}
}

func TestScoreCompleteResume(t *testing.T) {
	score, tips := DefaultConfig().Score(fullSignals())

	if score != 100 {
		t.Fatalf("score = %d, want 100", score)
	}
	if !reflect.DeepEqual(tips, maintenanceTips) {
		t.Fatalf("tips = %v, want maintenance tier", tips)
	}
}

func TestScoreEmptyResume(t *testing.T) {
	score, tips := DefaultConfig().Score(Signals{TaxonomySize: 80})

	if score != 0 {
		t.Fatalf("score = %d, want 0", score)
	}
	if !reflect.DeepEqual(tips, restructuringTips) {
		t.Fatalf("tips = %v, want restructuring tier", tips)
	}
}

func TestScoreMidTier(t *testing.T) {
	sig := Signals{
		Info: parse.PersonalInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "512-555-0143",
		},
		ExperienceCount: 3,
		EducationCount:  1,
		SkillCount:      5,
		TaxonomySize:    80,
	}

	score, tips := DefaultConfig().Score(sig)
	if score != 63 {
		t.Fatalf("score = %d, want 63", score)
	}
	if !reflect.DeepEqual(tips, improvementTips) {
		t.Fatalf("tips = %v, want improvement tier", tips)
	}
}

func TestScoreMoreSignalsNeverLower(t *testing.T) {
	base := Signals{TaxonomySize: 80, ExperienceCount: 1}
	richer := base
	richer.Info.Email = "jane@example.com"
	richer.SkillCount = 4

	lo, _ := DefaultConfig().Score(base)
	hi, _ := DefaultConfig().Score(richer)
	if hi <= lo {
		t.Fatalf("score did not increase: %d -> %d", lo, hi)
	}
}

func TestScoreKeywordStuffingHasDiminishingReturns(t *testing.T) {
	cfg := DefaultConfig()
	at := func(matches int) int {
		s, _ := cfg.Score(Signals{TaxonomySize: 100, KeywordCount: matches})
		return s
	}

	earlyGain := at(25) - at(0)
	lateGain := at(50) - at(25)
	if lateGain >= earlyGain {
		t.Fatalf("gains not diminishing: early %d, late %d", earlyGain, lateGain)
	}
}

func TestScoreCountsBeyondTargetsDoNotOverflow(t *testing.T) {
	sig := fullSignals()
	sig.ExperienceCount = 50
	sig.EducationCount = 50
	sig.SkillCount = 500
	sig.KeywordCount = 500

	score, _ := DefaultConfig().Score(sig)
	if score != 100 {
		t.Fatalf("score = %d, want 100", score)
	}
}

func TestScoreHandlesZeroTaxonomy(t *testing.T) {
	sig := fullSignals()
	sig.TaxonomySize = 0
	sig.KeywordCount = 0

	score, _ := DefaultConfig().Score(sig)
	if score < 0 || score > 100 {
		t.Fatalf("score = %d out of range", score)
	}
}

func TestTipsForReturnsACopy(t *testing.T) {
	first := tipsFor(0)
	first[0] = "mutated"
	if second := tipsFor(0); second[0] == "mutated" {
		t.Fatal("tipsFor exposed shared state")
	}
}
