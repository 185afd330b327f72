package parse

import "strings"

type section int

const (
	sectionNone section = iota
	sectionExperience
	sectionEducation
	sectionSkills
)

// Controlled heading vocabulary. Longer terms first so "work history" wins
// over a bare "work".
var headingVocab = []struct {
	term string
	sec  section
}{
	{"professional experience", sectionExperience},
	{"work history", sectionExperience},
	{"employment", sectionExperience},
	{"experience", sectionExperience},
	{"academic", sectionEducation},
	{"education", sectionEducation},
	{"proficiencies", sectionSkills},
	{"competencies", sectionSkills},
	{"expertise", sectionSkills},
	{"skills", sectionSkills},
}

const (
	maxHeadingLen       = 48
	maxHeadingPrefixLen = 24
)

// headingFor reports whether a line looks like a section heading. For inline
// headings like "Skills: Go, SQL" the trailing content is returned so the
// caller can keep it as section body.
func headingFor(line string) (section, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLen {
		return sectionNone, "", false
	}
	lower := strings.ToLower(trimmed)
	for _, v := range headingVocab {
		idx := strings.Index(lower, v.term)
		if idx < 0 || idx > maxHeadingPrefixLen {
			continue
		}
		rest := trimmed[idx+len(v.term):]
		rest = strings.TrimLeft(rest, ":-– \t")
		return v.sec, strings.TrimSpace(rest), true
	}
	return sectionNone, "", false
}

// splitSections assigns each line to the most recently seen heading.
// Lines before the first heading belong to no section.
func splitSections(lines []string) map[section][]string {
	out := make(map[section][]string)
	current := sectionNone
	for _, line := range lines {
		if sec, rest, ok := headingFor(line); ok {
			current = sec
			if rest != "" {
				out[current] = append(out[current], rest)
			}
			continue
		}
		if current != sectionNone {
			out[current] = append(out[current], line)
		}
	}
	return out
}
