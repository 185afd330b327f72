// Package parse recovers structured resume fields from extracted plain text.
// Everything here is best-effort: missing data yields empty fields, never errors.
package parse

import (
	"regexp"
	"strings"
	"unicode"
)

// PersonalInfo holds contact details recovered from the document head.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Entry is a single experience or education record, kept as free text.
type Entry struct {
	Description string `json:"description"`
}

// Parsed is the result of a full parse pass.
type Parsed struct {
	Info       PersonalInfo
	Experience []Entry
	Education  []Entry
	Skills     []string
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`)
	// "Austin, Texas" style lines near the top of the document.
	cityRegionRe = regexp.MustCompile(`^[A-Z][A-Za-z .'-]*,\s*[A-Z][A-Za-z .'-]*$`)
)

// Parse applies heuristics over extracted resume text. The same input always
// produces the same output, and no input produces an error.
func Parse(text string) Parsed {
	lines := strings.Split(text, "\n")
	parsed := Parsed{
		Info: PersonalInfo{
			Name:     extractName(lines),
			Email:    emailRe.FindString(text),
			Phone:    phoneRe.FindString(text),
			Location: extractLocation(lines),
		},
	}

	sections := splitSections(lines)
	parsed.Experience = entries(sections[sectionExperience])
	parsed.Education = entries(sections[sectionEducation])

	skillLines := sections[sectionSkills]
	if len(skillLines) == 0 {
		skillLines = fallbackSkillLines(lines)
	}
	parsed.Skills = extractSkills(skillLines)
	return parsed
}

const nameSearchDepth = 5

var nameSkipPrefixes = []string{"resume", "curriculum", "cv", "name:"}

// extractName looks for a short capitalized line near the top of the document
// that is not a document title or a contact line.
func extractName(lines []string) string {
	seen := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if seen > nameSearchDepth {
			return ""
		}
		if looksLikeName(trimmed) {
			return trimmed
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range nameSkipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

var locationIndicators = []string{"address", "location", "based in", "residing in"}

const locationSearchDepth = 10

func extractLocation(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		for _, ind := range locationIndicators {
			idx := strings.Index(lower, ind)
			if idx < 0 {
				continue
			}
			rest := trimmed[idx+len(ind):]
			rest = strings.TrimLeft(rest, ": \t")
			if rest = strings.TrimSpace(rest); rest != "" {
				return rest
			}
		}
	}
	// Fall back to a "City, Region" line near the top.
	seen := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if seen++; seen > locationSearchDepth {
			break
		}
		if cityRegionRe.MatchString(trimmed) {
			return trimmed
		}
	}
	return ""
}

// entries groups section lines into records. Blank lines and bullet markers
// both start a new record; everything else continues the current one.
func entries(lines []string) []Entry {
	var out []Entry
	var current []string
	flush := func() {
		joined := strings.TrimSpace(strings.Join(current, " "))
		if joined != "" {
			out = append(out, Entry{Description: joined})
		}
		current = current[:0]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if stripped, bulleted := trimBullet(trimmed); bulleted {
			flush()
			current = append(current, stripped)
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	return out
}

func trimBullet(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• ", "● ", "– "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}
	return line, false
}

const (
	maxSkillLen        = 48
	maxFallbackLineLen = 120
)

func isSkillDelimiter(r rune) bool {
	return r == ',' || r == '•' || r == '|' || r == ';'
}

// extractSkills tokenizes skill lines on list delimiters, deduplicating
// case-insensitively while keeping first-seen casing and document order.
func extractSkills(lines []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, line := range lines {
		trimmed, _ := trimBullet(strings.TrimSpace(line))
		for _, token := range strings.FieldsFunc(trimmed, isSkillDelimiter) {
			token = strings.TrimSpace(token)
			if token == "" || len(token) > maxSkillLen {
				continue
			}
			key := strings.ToLower(token)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, token)
		}
	}
	return out
}

// fallbackSkillLines picks comma-rich short lines anywhere in the document
// when no skills heading was found.
func fallbackSkillLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > maxFallbackLineLen {
			continue
		}
		delims := 0
		for _, r := range trimmed {
			if isSkillDelimiter(r) {
				delims++
			}
		}
		if delims >= 2 {
			out = append(out, trimmed)
		}
	}
	return out
}
