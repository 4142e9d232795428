package parsers

import (
	"regexp"
	"strings"
)

// Sentinel values substituted when a field cannot be extracted. Extraction
// degrades to these instead of failing; downstream analysis treats them as
// valid, lower-scoring inputs.
const (
	NameNotDetected    = "Name not detected"
	EmailNotFound      = "Email not found"
	PhoneNotFound      = "Phone not found"
	EducationNotFound  = "Education section not found"
	ExperienceNotFound = "Experience section not found"
)

// ResumeRecord is the aggregate structure extracted from one resume.
type ResumeRecord struct {
	RawText        string            `json:"raw_text"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
	Sections       SectionMap        `json:"sections"`
}

// EducationEntry represents one education entry.
type EducationEntry struct {
	Degree  string `json:"degree,omitempty"`
	Details string `json:"details,omitempty"`
}

// ExperienceEntry represents one work experience entry. Date is the free
// text "<start> - <end>" range as it appeared in the resume.
type ExperienceEntry struct {
	TitleCompany string `json:"title_company,omitempty"`
	Date         string `json:"date,omitempty"`
	Description  string `json:"description"`
}

// ProjectEntry represents one project entry.
type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NameExtractor is the strategy used to pull the candidate's name out of
// the resume text. The line-heuristic implementation is always available;
// an entity-recognition based one can be substituted at construction time.
type NameExtractor interface {
	ExtractName(text string) string
}

// LineHeuristicNameExtractor picks the first of the first three non-empty
// lines that is short enough to plausibly be a name.
type LineHeuristicNameExtractor struct{}

// ExtractName returns the detected name or the NameNotDetected sentinel.
func (LineHeuristicNameExtractor) ExtractName(text string) string {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
		if len(candidates) == 3 {
			break
		}
	}
	for _, line := range candidates {
		if len(line) > 3 && len(strings.Fields(line)) <= 5 {
			return line
		}
	}
	return NameNotDetected
}

const monthAlternation = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|` +
	`January|February|March|April|May|June|July|August|September|October|November|December`

// dateRangePattern captures "<start> - <end>" where each side is a
// month-year, a numeric date, a bare year, or (for the end only) an
// open-ended marker.
const dateRangePattern = `((?:` + monthAlternation + `)\.?[\s,]*\d{4}|\d{1,2}/\d{4}|\d{4})` +
	`\s*(-|–|to)\s*` +
	`((?:` + monthAlternation + `)\.?[\s,]*\d{4}|\d{1,2}/\d{4}|\d{4}|Present|Current|Now)`

// ResumeParser extracts structured fields from flat resume text.
type ResumeParser struct {
	names NameExtractor

	emailRegex     *regexp.Regexp
	phoneCleanup   *regexp.Regexp
	phonePatterns  []*regexp.Regexp
	degreePatterns []*regexp.Regexp
	dateRange      *regexp.Regexp
	paragraphSplit *regexp.Regexp
	projectTitle   *regexp.Regexp
	projectYear    *regexp.Regexp
	skillBullets   *regexp.Regexp
	listBullets    *regexp.Regexp
	commaOrLine    *regexp.Regexp
}

// NewResumeParser creates a parser using the line-heuristic name strategy.
func NewResumeParser() *ResumeParser {
	return NewResumeParserWithNames(LineHeuristicNameExtractor{})
}

// NewResumeParserWithNames creates a parser with an explicit name
// extraction strategy.
func NewResumeParserWithNames(names NameExtractor) *ResumeParser {
	return &ResumeParser{
		names:        names,
		emailRegex:   regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
		phoneCleanup: regexp.MustCompile(`[^0-9+()\-]`),
		// ordered by priority: international with parens, international
		// plain, parenthesized local, dashed local, bare digit run
		phonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\+\d{1,3}\s*\(\d{1,4}\)\s*\d{3,4}[-\s]?\d{3,4}`),
			regexp.MustCompile(`\+\d{1,3}\s*\d{1,4}\s*\d{3,4}[-\s]?\d{3,4}`),
			regexp.MustCompile(`\(\d{3,4}\)\s*\d{3,4}[-\s]?\d{3,4}`),
			regexp.MustCompile(`\d{3,4}[-\s]?\d{3,4}[-\s]?\d{3,4}`),
			regexp.MustCompile(`\d{10,12}`),
		},
		degreePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Doctorate|BSc|BA|MS|MSc|MBA|BBA|B\.Tech|M\.Tech|B\.E|M\.E)\.?\s+(of|in|on)?\s+[A-Za-z\s,]+`),
			regexp.MustCompile(`(?i)[A-Za-z\s]+(University|College|Institute|School)`),
			regexp.MustCompile(`(?i)(19|20)\d{2}\s*(-|–|to)\s*(19|20)\d{2}|Present`),
			regexp.MustCompile(`(?i)GPA\s*:?\s*\d+\.\d+`),
		},
		dateRange:      regexp.MustCompile(dateRangePattern),
		paragraphSplit: regexp.MustCompile(`\n\s*\n`),
		projectTitle:   regexp.MustCompile(`^[A-Z]`),
		projectYear:    regexp.MustCompile(`\(\d{4}\)`),
		skillBullets:   regexp.MustCompile(`•|·|\*|›|✓|✔|▪|▫|-|\|`),
		listBullets:    regexp.MustCompile(`•|·|\*|›|✓|✔|▪|▫|-`),
		commaOrLine:    regexp.MustCompile(`,|\n`),
	}
}

// Parse extracts every field of the ResumeRecord from the flat text.
// Fields that cannot be found degrade to sentinels or empty collections.
func (p *ResumeParser) Parse(rawText string) *ResumeRecord {
	sections := IdentifySections(rawText)
	return &ResumeRecord{
		RawText:        rawText,
		Name:           p.names.ExtractName(rawText),
		Email:          p.extractEmail(rawText),
		Phone:          p.extractPhone(rawText),
		Education:      p.extractEducation(sections),
		Experience:     p.extractExperience(sections),
		Skills:         p.extractSkills(sections),
		Projects:       p.extractProjects(sections),
		Certifications: p.extractCertifications(sections),
		Languages:      p.extractLanguages(sections),
		Sections:       sections,
	}
}

func (p *ResumeParser) extractEmail(text string) string {
	if email := p.emailRegex.FindString(text); email != "" {
		return email
	}
	return EmailNotFound
}

// extractPhone tries the phone shapes in priority order against a copy of
// the text with everything except digits, +, parentheses, and dashes
// replaced by spaces.
func (p *ResumeParser) extractPhone(text string) string {
	cleaned := p.phoneCleanup.ReplaceAllString(text, " ")
	for _, pattern := range p.phonePatterns {
		if match := pattern.FindString(cleaned); match != "" {
			return match
		}
	}
	return PhoneNotFound
}

func (p *ResumeParser) matchesDegreePattern(line string) bool {
	for _, pattern := range p.degreePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func (p *ResumeParser) extractEducation(sections SectionMap) []EducationEntry {
	section := sections["education"]
	if !section.Present {
		return []EducationEntry{{Details: EducationNotFound}}
	}

	var entries []EducationEntry
	var current EducationEntry
	hasContent := func() bool { return current.Degree != "" || current.Details != "" }

	for _, line := range strings.Split(section.Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		matched := p.matchesDegreePattern(line)
		if matched && hasContent() {
			entries = append(entries, current)
			current = EducationEntry{}
		}
		if matched && current.Degree == "" {
			current.Degree = line
		} else {
			if current.Details != "" {
				current.Details += "\n"
			}
			current.Details += line
		}
	}
	if hasContent() {
		entries = append(entries, current)
	}

	if len(entries) == 0 {
		return []EducationEntry{{Details: section.Body}}
	}
	return entries
}

// extractExperience first splits the section on date ranges; the last line
// before a range becomes the title/company and the text up to the next
// range becomes the description. When no date range exists anywhere it
// falls back to blank-line-delimited paragraphs.
func (p *ResumeParser) extractExperience(sections SectionMap) []ExperienceEntry {
	section := sections["experience"]
	if !section.Present {
		return []ExperienceEntry{{Description: ExperienceNotFound}}
	}

	body := section.Body
	var entries []ExperienceEntry

	matches := p.dateRange.FindAllStringSubmatchIndex(body, -1)
	if len(matches) > 0 {
		for i, m := range matches {
			start := body[m[2]:m[3]]
			end := body[m[6]:m[7]]

			prevEnd := 0
			if i > 0 {
				prevEnd = matches[i-1][1]
			}
			titleCompany := ""
			if before := strings.TrimSpace(body[prevEnd:m[0]]); before != "" {
				lines := strings.Split(before, "\n")
				titleCompany = strings.TrimSpace(lines[len(lines)-1])
			}

			descEnd := len(body)
			if i+1 < len(matches) {
				descEnd = matches[i+1][0]
			}

			entries = append(entries, ExperienceEntry{
				TitleCompany: titleCompany,
				Date:         start + " - " + end,
				Description:  strings.TrimSpace(body[m[1]:descEnd]),
			})
		}
	} else {
		for _, para := range p.paragraphSplit.Split(body, -1) {
			if strings.TrimSpace(para) == "" {
				continue
			}
			if m := p.dateRange.FindStringSubmatchIndex(para); m != nil {
				date := para[m[2]:m[3]] + " - " + para[m[6]:m[7]]
				withoutDate := strings.Replace(para, para[m[0]:m[1]], "", 1)
				lines := strings.Split(withoutDate, "\n")
				entry := ExperienceEntry{
					TitleCompany: strings.TrimSpace(lines[0]),
					Date:         date,
				}
				if len(lines) > 1 {
					entry.Description = strings.TrimSpace(strings.Join(lines[1:], "\n"))
				}
				entries = append(entries, entry)
			} else {
				entries = append(entries, ExperienceEntry{Description: strings.TrimSpace(para)})
			}
		}
	}

	if len(entries) == 0 {
		return []ExperienceEntry{{Description: body}}
	}
	return entries
}

// extractProjects starts a new entry at any line beginning with an
// uppercase letter and under 100 characters, or containing a parenthesized
// four-digit year. Following lines accumulate as the description.
func (p *ResumeParser) extractProjects(sections SectionMap) []ProjectEntry {
	section := sections["projects"]
	if !section.Present {
		return []ProjectEntry{}
	}

	var projects []ProjectEntry
	var current *ProjectEntry

	for _, line := range strings.Split(section.Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		isTitle := (p.projectTitle.MatchString(line) && len(line) < 100) || p.projectYear.MatchString(line)
		if isTitle {
			if current != nil {
				projects = append(projects, *current)
			}
			current = &ProjectEntry{Title: line}
		} else if current != nil {
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += "\n" + line
			}
		}
	}
	if current != nil {
		projects = append(projects, *current)
	}
	return projects
}

func (p *ResumeParser) extractSkills(sections SectionMap) []string {
	section := sections["skills"]
	if !section.Present {
		return []string{}
	}
	normalized := p.skillBullets.ReplaceAllString(section.Body, ",")
	return p.splitTokens(normalized)
}

func (p *ResumeParser) extractCertifications(sections SectionMap) []string {
	section := sections["certifications"]
	if !section.Present {
		return []string{}
	}
	normalized := p.listBullets.ReplaceAllString(section.Body, "\n")
	tokens := []string{}
	for _, token := range strings.Split(normalized, "\n") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func (p *ResumeParser) extractLanguages(sections SectionMap) []string {
	section := sections["languages"]
	if !section.Present {
		return []string{}
	}
	normalized := p.listBullets.ReplaceAllString(section.Body, ",")
	return p.splitTokens(normalized)
}

func (p *ResumeParser) splitTokens(text string) []string {
	tokens := []string{}
	for _, token := range p.commaOrLine.Split(text, -1) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
