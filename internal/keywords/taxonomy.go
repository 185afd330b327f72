// Package keywords matches resume text against a term taxonomy.
package keywords

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed default_taxonomy.txt
var defaultTaxonomy string

// ErrEmptyTaxonomy reports a taxonomy source with no usable terms.
var ErrEmptyTaxonomy = errors.New("taxonomy contains no terms")

// Taxonomy is an ordered, immutable list of terms to scan for.
type Taxonomy struct {
	terms   []string
	lowered []string
}

// New builds a taxonomy from terms, trimming whitespace and deduplicating
// case-insensitively while preserving order and first-seen casing.
func New(terms []string) *Taxonomy {
	t := &Taxonomy{}
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		lower := strings.ToLower(term)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		t.terms = append(t.terms, term)
		t.lowered = append(t.lowered, lower)
	}
	return t
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return New(parseTerms(defaultTaxonomy))
}

// Load reads a taxonomy from a newline-separated file. Blank lines and lines
// starting with # are ignored.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	t := New(parseTerms(string(data)))
	if t.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTaxonomy, path)
	}
	return t, nil
}

func parseTerms(src string) []string {
	var terms []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms
}

// Terms returns a copy of the taxonomy in order.
func (t *Taxonomy) Terms() []string {
	out := make([]string, len(t.terms))
	copy(out, t.terms)
	return out
}

// Size reports the number of terms.
func (t *Taxonomy) Size() int {
	return len(t.terms)
}
