package parsers

import (
	"regexp"
	"strings"
)

// Section records whether a canonical section was found and, if so, the raw
// substring spanning it.
type Section struct {
	Present bool   `json:"present"`
	Body    string `json:"body,omitempty"`
}

// SectionMap maps canonical section keys to their detection result.
type SectionMap map[string]Section

type sectionDef struct {
	key     string
	aliases []string
	re      *regexp.Regexp
}

// sectionDefs lists the 10 canonical resume sections in a fixed order so
// that reports derived from them are deterministic.
var sectionDefs = buildSectionDefs([]struct {
	key     string
	aliases []string
}{
	{"contact", []string{"CONTACT", "CONTACT INFORMATION"}},
	{"summary", []string{"SUMMARY", "PROFESSIONAL SUMMARY", "PROFILE"}},
	{"education", []string{"EDUCATION", "ACADEMIC BACKGROUND"}},
	{"experience", []string{"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT", "WORK HISTORY"}},
	{"skills", []string{"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES"}},
	{"projects", []string{"PROJECTS", "PROJECT EXPERIENCE", "ACADEMIC PROJECTS"}},
	{"certifications", []string{"CERTIFICATIONS", "CERTIFICATES", "PROFESSIONAL CERTIFICATIONS"}},
	{"languages", []string{"LANGUAGES", "LANGUAGE SKILLS"}},
	{"interests", []string{"INTERESTS", "HOBBIES"}},
	{"references", []string{"REFERENCES"}},
})

func buildSectionDefs(defs []struct {
	key     string
	aliases []string
}) []sectionDef {
	out := make([]sectionDef, 0, len(defs))
	for _, d := range defs {
		out = append(out, sectionDef{key: d.key, aliases: d.aliases, re: sectionRegexp(d.aliases)})
	}
	return out
}

// sectionRegexp builds the heuristic section pattern: a case-insensitive
// alternation of the header aliases, then the body up to the next line that
// looks like an ALL-CAPS header followed by a colon or newline, or the end
// of the document.
func sectionRegexp(aliases []string) *regexp.Regexp {
	quoted := make([]string, len(aliases))
	for i, alias := range aliases {
		quoted[i] = regexp.QuoteMeta(alias)
	}
	// The suffix after the alias is lazy so that a blank line under an
	// empty header is left for the boundary alternative to consume;
	// greedy matching would swallow the next ALL-CAPS header into the body.
	pattern := `(?s)(?i:` + strings.Join(quoted, "|") + `)[:\s]*?\n(.*?)(?:\n\s*[A-Z][A-Z\s]+[A-Z][:\s]*\n|$)`
	return regexp.MustCompile(pattern)
}

// SectionKeys returns the canonical section keys in their fixed order.
func SectionKeys() []string {
	keys := make([]string, len(sectionDefs))
	for i, d := range sectionDefs {
		keys[i] = d.key
	}
	return keys
}

// FindSection locates the first section headed by one of the given aliases
// and returns its trimmed body. The second return value is false when no
// alias matches anywhere in the text.
func FindSection(text string, aliases []string) (string, bool) {
	return findSection(text, sectionRegexp(aliases))
}

func findSection(text string, re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// IdentifySections runs section detection for all canonical sections.
// Overlapping or nested headers are not detected; the first match wins.
func IdentifySections(text string) SectionMap {
	sections := make(SectionMap, len(sectionDefs))
	for _, d := range sectionDefs {
		body, _ := findSection(text, d.re)
		sections[d.key] = Section{Present: body != "", Body: body}
	}
	return sections
}
