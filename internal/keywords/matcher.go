package keywords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match scans text for taxonomy terms, case-insensitively. Results come back
// in taxonomy order with no duplicates. Single words match only on word
// boundaries so "sales" does not fire inside "salesforce"; multi-word phrases
// match as substrings.
func (t *Taxonomy) Match(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for i, term := range t.lowered {
		if strings.Contains(term, " ") {
			if strings.Contains(lower, term) {
				found = append(found, t.terms[i])
			}
			continue
		}
		if containsWord(lower, term) {
			found = append(found, t.terms[i])
		}
	}
	return found
}

func containsWord(text, word string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		if boundaryBefore(text, idx) && boundaryAfter(text, end) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
