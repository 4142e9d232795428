package skills

import (
	"regexp"
	"strings"
)

// SkillSet maps a category label ("programming_languages", "soft_skills",
// "industry_finance", ...) to the matched skill display names. Names keep
// the taxonomy's original casing and never repeat within a category.
type SkillSet map[string][]string

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

type categoryPatterns struct {
	category string
	skills   []skillPattern
}

// Matcher matches free text against a taxonomy using case-insensitive
// whole-word patterns. All patterns are compiled once at construction; the
// matcher is read-only afterwards and safe for concurrent use.
type Matcher struct {
	technical []categoryPatterns
	soft      []skillPattern
	industry  []categoryPatterns
}

// NewMatcher compiles matching patterns for every skill in the taxonomy.
func NewMatcher(tax *Taxonomy) *Matcher {
	m := &Matcher{}
	for _, category := range tax.TechnicalCategories() {
		m.technical = append(m.technical, categoryPatterns{
			category: category,
			// technical names tolerate a js/.js suffix so "react"
			// also matches "reactjs" and "react.js"
			skills: compilePatterns(tax.Technical[category], `(?:\.?js)?`),
		})
	}
	m.soft = compilePatterns(tax.Soft, "")
	for _, industry := range tax.Industries() {
		m.industry = append(m.industry, categoryPatterns{
			category: "industry_" + industry,
			skills:   compilePatterns(tax.IndustrySpecific[industry], ""),
		})
	}
	return m
}

func compilePatterns(names []string, suffix string) []skillPattern {
	patterns := make([]skillPattern, 0, len(names))
	for _, name := range names {
		pattern := `\b` + regexp.QuoteMeta(strings.ToLower(name)) + suffix + `\b`
		patterns = append(patterns, skillPattern{name: name, re: regexp.MustCompile(pattern)})
	}
	return patterns
}

// MatchResume matches the full resume text against the taxonomy and groups
// the results by originating category. rawSkills are the tokens lifted
// verbatim from the resume's skills section; any of them unknown to the
// taxonomy land in an "uncategorized" bucket.
func (m *Matcher) MatchResume(text string, rawSkills []string) SkillSet {
	lower := strings.ToLower(text)
	result := make(SkillSet)

	for _, cat := range m.technical {
		if matched := matchAll(cat.skills, lower); len(matched) > 0 {
			result[cat.category] = matched
		}
	}
	result["soft_skills"] = matchAll(m.soft, lower)
	for _, cat := range m.industry {
		if matched := matchAll(cat.skills, lower); len(matched) > 0 {
			result[cat.category] = matched
		}
	}

	if len(rawSkills) > 0 {
		anyMatched := false
		known := make(map[string]bool)
		for _, names := range result {
			for _, name := range names {
				anyMatched = true
				known[strings.ToLower(name)] = true
			}
		}
		if !anyMatched {
			result["uncategorized"] = rawSkills
		} else {
			var unknown []string
			for _, token := range rawSkills {
				if !known[strings.ToLower(token)] {
					unknown = append(unknown, token)
				}
			}
			if len(unknown) > 0 {
				result["uncategorized"] = unknown
			}
		}
	}

	return result
}

// MatchText matches arbitrary text (typically a job description) against
// the whole taxonomy and returns the matched skill names with no
// categorization, in taxonomy order.
func (m *Matcher) MatchText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	lower := strings.ToLower(text)
	matched := []string{}
	for _, cat := range m.technical {
		matched = append(matched, matchAll(cat.skills, lower)...)
	}
	matched = append(matched, matchAll(m.soft, lower)...)
	for _, cat := range m.industry {
		matched = append(matched, matchAll(cat.skills, lower)...)
	}
	return matched
}

func matchAll(patterns []skillPattern, lowerText string) []string {
	matched := []string{}
	for _, p := range patterns {
		if p.re.MatchString(lowerText) {
			matched = append(matched, p.name)
		}
	}
	return matched
}
