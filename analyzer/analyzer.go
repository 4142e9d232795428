package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"resumeinsight/parsers"
	"resumeinsight/skills"
)

// Essential sections every resume should carry; recommended ones
// strengthen it.
var (
	essentialSections   = []string{"summary", "education", "experience", "skills"}
	recommendedSections = []string{"projects", "certifications"}
)

// actionVerbs is the fixed vocabulary counted in experience descriptions.
var actionVerbs = []string{
	"achieved", "improved", "developed", "created", "implemented", "managed", "led", "designed",
	"established", "coordinated", "conducted", "organized", "directed", "launched", "spearheaded",
	"delivered", "generated", "reduced", "increased", "negotiated", "supervised", "trained",
	"analyzed", "built", "streamlined", "produced", "resolved", "executed", "maintained",
	"collaborated", "influenced", "optimized", "authored", "initiated", "transformed",
}

// coreActionVerbs is the subset whose absence marks an experience
// description as weak.
var coreActionVerbs = []string{
	"achieved", "improved", "developed", "created", "implemented", "managed", "led",
	"designed", "established", "coordinated", "analyzed", "built",
}

// SectionAnalysis reports which sections are present or missing.
type SectionAnalysis struct {
	Present            []string `json:"present"`
	MissingEssential   []string `json:"missing_essential"`
	MissingRecommended []string `json:"missing_recommended"`
	HasAllEssential    bool     `json:"has_all_essential"`
}

// WordCountAssessment holds the threshold verdicts; Summary is empty when
// no summary section was found.
type WordCountAssessment struct {
	Total   string `json:"total"`
	Summary string `json:"summary,omitempty"`
}

// WordCountAnalysis reports word counts over the raw text, the summary
// section, and the combined experience descriptions.
type WordCountAnalysis struct {
	Total      int                 `json:"total"`
	Summary    *int                `json:"summary,omitempty"`
	Experience int                 `json:"experience"`
	Assessment WordCountAssessment `json:"assessment"`
}

// VerbCount pairs an action verb with its occurrence count.
type VerbCount struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// ActionVerbAnalysis reports action verb usage across experience
// descriptions.
type ActionVerbAnalysis struct {
	Count       int         `json:"action_verb_count"`
	UniqueVerbs int         `json:"unique_action_verbs"`
	Density     float64     `json:"action_verb_density"`
	MostUsed    []VerbCount `json:"most_used_verbs"`
	Assessment  string      `json:"assessment"`
}

// KeywordMatchAnalysis reports how well resume skills cover the skills
// mentioned in a job description. MatchPercentage is nil when no job
// description was supplied.
type KeywordMatchAnalysis struct {
	MatchPercentage *float64 `json:"match_percentage"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Assessment      string   `json:"assessment"`
}

// AnalysisResult aggregates the five independent analyses. It is recomputed
// fresh on every run and never mutated in place.
type AnalysisResult struct {
	Sections     SectionAnalysis      `json:"sections_analysis"`
	WordCount    WordCountAnalysis    `json:"word_count"`
	ActionVerbs  ActionVerbAnalysis   `json:"action_verbs"`
	KeywordMatch KeywordMatchAnalysis `json:"keyword_match"`
	CommonIssues []string             `json:"common_resume_issues"`
}

// Analyzer runs the five analyses over an extracted ResumeRecord. All
// regular expressions are compiled once at construction.
type Analyzer struct {
	matcher *skills.Matcher

	wordToken    *regexp.Regexp
	summaryBody  *regexp.Regexp
	dateToken    *regexp.Regexp
	verbPatterns map[string]*regexp.Regexp
}

// NewAnalyzer creates an analyzer backed by the given skill matcher.
func NewAnalyzer(matcher *skills.Matcher) *Analyzer {
	verbPatterns := make(map[string]*regexp.Regexp, len(actionVerbs))
	for _, verb := range actionVerbs {
		verbPatterns[verb] = regexp.MustCompile(`\b` + verb + `\b`)
	}
	return &Analyzer{
		matcher:   matcher,
		wordToken: regexp.MustCompile(`\b\w+\b`),
		// re-derives the summary body from raw text, independent of the
		// section identifier's own boundary detection
		summaryBody:  regexp.MustCompile(`(?s)(?i:SUMMARY|PROFESSIONAL SUMMARY|PROFILE)[:\s]*?\n(.*?)(?:\n\s*[A-Z][A-Z\s]+[A-Z][:\s]*\n|$)`),
		dateToken:    regexp.MustCompile(`(?:` + `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|May|June|July|August|September|October|November|December` + `)\.?[\s,]*\d{4}|\d{1,2}/\d{4}|\d{4}`),
		verbPatterns: verbPatterns,
	}
}

// Analyze computes all five analyses for one resume. jobDescription may be
// empty, in which case keyword matching degrades to its no-data branch.
func (a *Analyzer) Analyze(record *parsers.ResumeRecord, skillSet skills.SkillSet, jobDescription string) AnalysisResult {
	return AnalysisResult{
		Sections:     a.analyzeSections(record),
		WordCount:    a.analyzeWordCount(record),
		ActionVerbs:  a.analyzeActionVerbs(record),
		KeywordMatch: a.analyzeKeywordMatch(skillSet, record.Skills, jobDescription),
		CommonIssues: a.identifyCommonIssues(record),
	}
}

func (a *Analyzer) analyzeSections(record *parsers.ResumeRecord) SectionAnalysis {
	present := []string{}
	for _, key := range parsers.SectionKeys() {
		if record.Sections[key].Present {
			present = append(present, key)
		}
	}

	missingEssential := []string{}
	for _, key := range essentialSections {
		if !record.Sections[key].Present {
			missingEssential = append(missingEssential, key)
		}
	}
	missingRecommended := []string{}
	for _, key := range recommendedSections {
		if !record.Sections[key].Present {
			missingRecommended = append(missingRecommended, key)
		}
	}

	return SectionAnalysis{
		Present:            present,
		MissingEssential:   missingEssential,
		MissingRecommended: missingRecommended,
		HasAllEssential:    len(missingEssential) == 0,
	}
}

func (a *Analyzer) countWords(text string) int {
	return len(a.wordToken.FindAllString(text, -1))
}

func (a *Analyzer) analyzeWordCount(record *parsers.ResumeRecord) WordCountAnalysis {
	analysis := WordCountAnalysis{Total: a.countWords(record.RawText)}

	if record.Sections["summary"].Present {
		if m := a.summaryBody.FindStringSubmatch(record.RawText); m != nil {
			count := a.countWords(m[1])
			analysis.Summary = &count
		}
	}

	for _, exp := range record.Experience {
		analysis.Experience += a.countWords(exp.Description)
	}

	switch {
	case analysis.Total < 300:
		analysis.Assessment.Total = "too_short"
	case analysis.Total > 1000:
		analysis.Assessment.Total = "too_long"
	default:
		analysis.Assessment.Total = "good"
	}

	if analysis.Summary != nil {
		switch {
		case *analysis.Summary < 30:
			analysis.Assessment.Summary = "too_short"
		case *analysis.Summary > 250:
			analysis.Assessment.Summary = "too_long"
		default:
			analysis.Assessment.Summary = "good"
		}
	}

	return analysis
}

func (a *Analyzer) analyzeActionVerbs(record *parsers.ResumeRecord) ActionVerbAnalysis {
	descriptions := make([]string, 0, len(record.Experience))
	for _, exp := range record.Experience {
		if exp.Description != "" {
			descriptions = append(descriptions, exp.Description)
		}
	}
	combined := strings.ToLower(strings.Join(descriptions, " "))

	analysis := ActionVerbAnalysis{MostUsed: []VerbCount{}}
	counts := []VerbCount{}
	for _, verb := range actionVerbs {
		n := len(a.verbPatterns[verb].FindAllString(combined, -1))
		if n > 0 {
			analysis.Count += n
			analysis.UniqueVerbs++
			counts = append(counts, VerbCount{Verb: verb, Count: n})
		}
	}

	if totalWords := a.countWords(combined); totalWords > 0 {
		analysis.Density = float64(analysis.Count) / float64(totalWords)
	}

	// top five by count; ties keep vocabulary order
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > 5 {
		counts = counts[:5]
	}
	analysis.MostUsed = counts

	if analysis.Density >= 0.05 {
		analysis.Assessment = "good"
	} else {
		analysis.Assessment = "needs_improvement"
	}
	return analysis
}

// analyzeKeywordMatch compares job description skills against the resume's
// skills, drawn both from the categorized skill set and the flat tokens of
// the skills section.
func (a *Analyzer) analyzeKeywordMatch(skillSet skills.SkillSet, rawSkills []string, jobDescription string) KeywordMatchAnalysis {
	if jobDescription == "" {
		return KeywordMatchAnalysis{
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			Assessment:      "no_job_description",
		}
	}

	jobSkills := a.matcher.MatchText(jobDescription)

	resumeSkills := make(map[string]bool)
	for _, names := range skillSet {
		for _, name := range names {
			resumeSkills[strings.ToLower(name)] = true
		}
	}
	for _, token := range rawSkills {
		resumeSkills[strings.ToLower(token)] = true
	}

	matched := []string{}
	missing := []string{}
	for _, skill := range jobSkills {
		if resumeSkills[strings.ToLower(skill)] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	pct := 0.0
	if len(jobSkills) > 0 {
		pct = float64(len(matched)) / float64(len(jobSkills)) * 100
	}

	var assessment string
	switch {
	case pct >= 80:
		assessment = "excellent"
	case pct >= 60:
		assessment = "good"
	case pct >= 40:
		assessment = "fair"
	default:
		assessment = "poor"
	}

	return KeywordMatchAnalysis{
		MatchPercentage: &pct,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Assessment:      assessment,
	}
}

func (a *Analyzer) identifyCommonIssues(record *parsers.ResumeRecord) []string {
	issues := []string{}

	if record.Email == parsers.EmailNotFound {
		issues = append(issues, "Missing email address")
	}
	if record.Phone == parsers.PhoneNotFound {
		issues = append(issues, "Missing phone number")
	}
	if !record.Sections["summary"].Present {
		issues = append(issues, "Missing professional summary section")
	}
	if !record.Sections["experience"].Present {
		issues = append(issues, "Missing work experience section")
	}
	if !record.Sections["education"].Present {
		issues = append(issues, "Missing education section")
	}
	if !record.Sections["skills"].Present {
		issues = append(issues, "Missing skills section")
	}

	if a.hasWeakExperience(record.Experience) {
		issues = append(issues, "Weak experience descriptions (too short or lacking action verbs)")
	}

	if strings.Count(record.RawText, "\n\n\n") > 5 {
		issues = append(issues, "Potential formatting issues: excessive line breaks")
	}

	if a.hasInconsistentDates(record.RawText) {
		issues = append(issues, "Inconsistent date formats")
	}

	return issues
}

// hasWeakExperience stops at the first entry whose description is under 15
// words or contains none of the core action verbs.
func (a *Analyzer) hasWeakExperience(entries []parsers.ExperienceEntry) bool {
	for _, exp := range entries {
		if a.countWords(exp.Description) < 15 {
			return true
		}
		lower := strings.ToLower(exp.Description)
		found := false
		for _, verb := range coreActionVerbs {
			if a.verbPatterns[verb].MatchString(lower) {
				found = true
				break
			}
		}
		if !found {
			return true
		}
	}
	return false
}

// hasInconsistentDates is a length-based heuristic, not a real date parser:
// date-shaped tokens whose matched lengths take more than one distinct
// value suggest mixed formats.
func (a *Analyzer) hasInconsistentDates(rawText string) bool {
	lengths := make(map[int]bool)
	for _, token := range a.dateToken.FindAllString(rawText, -1) {
		lengths[len(token)] = true
		if len(lengths) > 1 {
			return true
		}
	}
	return false
}
