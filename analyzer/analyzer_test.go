package analyzer

import (
	"math"
	"strings"
	"testing"

	"resumeinsight/parsers"
	"resumeinsight/skills"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(skills.NewMatcher(skills.DefaultTaxonomy()))
}

func parseFixture(text string) (*parsers.ResumeRecord, skills.SkillSet) {
	record := parsers.NewResumeParser().Parse(text)
	matcher := skills.NewMatcher(skills.DefaultTaxonomy())
	return record, matcher.MatchResume(text, record.Skills)
}

const analyzerResume = `Jane Doe
jane.doe@example.com
(123) 456-7890

SUMMARY
Backend engineer who has shipped and operated large distributed systems for
eight years, with a focus on reliability, clear interfaces, and mentoring
junior engineers through their first on-call rotations and major launches.

EDUCATION
Bachelor of Science in Computer Science
State University

EXPERIENCE
Backend Engineer at Example Corp
Jan 2019 - Present
Developed and implemented the billing platform, improved request latency by
forty percent, led the migration to hosted databases, designed the audit
pipeline, analyzed failure modes across services, and built the internal
tooling the whole team still uses for weekly production releases.

SKILLS
Python, Java, Docker

PROJECTS
Inventory Tracker (2020)
a small warehouse tracking service

CERTIFICATIONS
- AWS Certified Developer
`

func TestAnalyzeSections(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture(analyzerResume)

	result := a.Analyze(record, skillSet, "")

	if !result.Sections.HasAllEssential {
		t.Errorf("all essential sections present, got missing %v", result.Sections.MissingEssential)
	}
	if len(result.Sections.MissingRecommended) != 0 {
		t.Errorf("projects and certifications present, got missing %v", result.Sections.MissingRecommended)
	}
}

func TestAnalyzeSectionsMissing(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture("just some words with no structure to find anywhere in them")

	result := a.Analyze(record, skillSet, "")

	if result.Sections.HasAllEssential {
		t.Error("no sections should be found in headerless text")
	}
	if len(result.Sections.MissingEssential) != 4 {
		t.Errorf("all 4 essential sections missing, got %v", result.Sections.MissingEssential)
	}
	if len(result.Sections.Present) != 0 {
		t.Errorf("present: got %v", result.Sections.Present)
	}
}

func TestAnalyzeWordCountThresholds(t *testing.T) {
	a := newTestAnalyzer()

	short, skillSet := parseFixture("a few words only")
	result := a.Analyze(short, skillSet, "")
	if result.WordCount.Assessment.Total != "too_short" {
		t.Errorf("got %q", result.WordCount.Assessment.Total)
	}

	long := &parsers.ResumeRecord{
		RawText:  strings.Repeat("word ", 1500),
		Sections: parsers.IdentifySections(""),
	}
	result = a.Analyze(long, skills.SkillSet{}, "")
	if result.WordCount.Assessment.Total != "too_long" {
		t.Errorf("got %q", result.WordCount.Assessment.Total)
	}
	if result.WordCount.Total != 1500 {
		t.Errorf("total: got %d", result.WordCount.Total)
	}
}

func TestAnalyzeWordCountSummaryAbsent(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture("no sections here at all just words")

	result := a.Analyze(record, skillSet, "")
	if result.WordCount.Summary != nil {
		t.Errorf("summary count must be nil without a summary section, got %v", *result.WordCount.Summary)
	}
	if result.WordCount.Assessment.Summary != "" {
		t.Errorf("summary assessment must be empty, got %q", result.WordCount.Assessment.Summary)
	}
}

func TestAnalyzeActionVerbs(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture(analyzerResume)

	result := a.Analyze(record, skillSet, "")
	verbs := result.ActionVerbs

	// developed, implemented, improved, led, designed, analyzed, built
	if verbs.UniqueVerbs != 7 {
		t.Errorf("unique verbs: got %d, most used %v", verbs.UniqueVerbs, verbs.MostUsed)
	}
	if verbs.Count < 7 {
		t.Errorf("count: got %d", verbs.Count)
	}
	if verbs.Density <= 0 {
		t.Error("density must be positive")
	}
	if len(verbs.MostUsed) > 5 {
		t.Errorf("most used capped at 5, got %d", len(verbs.MostUsed))
	}
}

func TestAnalyzeActionVerbsNoExperience(t *testing.T) {
	a := newTestAnalyzer()
	record := &parsers.ResumeRecord{
		RawText:  "nothing",
		Sections: parsers.IdentifySections("nothing"),
	}

	result := a.Analyze(record, skills.SkillSet{}, "")
	verbs := result.ActionVerbs

	if verbs.Count != 0 || verbs.UniqueVerbs != 0 {
		t.Errorf("got count=%d unique=%d", verbs.Count, verbs.UniqueVerbs)
	}
	if verbs.Density != 0 {
		t.Errorf("density must be 0 with no experience text, got %f", verbs.Density)
	}
	if verbs.Assessment != "needs_improvement" {
		t.Errorf("got %q", verbs.Assessment)
	}
}

func TestAnalyzeKeywordMatchNoJobDescription(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture(analyzerResume)

	result := a.Analyze(record, skillSet, "")
	km := result.KeywordMatch

	if km.MatchPercentage != nil {
		t.Errorf("percentage must be nil without a job description, got %v", *km.MatchPercentage)
	}
	if km.Assessment != "no_job_description" {
		t.Errorf("got %q", km.Assessment)
	}
	if len(km.MatchedKeywords) != 0 || len(km.MissingKeywords) != 0 {
		t.Error("keyword lists must be empty without a job description")
	}
}

func TestAnalyzeKeywordMatchPartial(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture(analyzerResume)

	// resume has Python and Java but not SQL
	result := a.Analyze(record, skillSet, "Looking for Python, Java and SQL expertise")
	km := result.KeywordMatch

	if km.MatchPercentage == nil {
		t.Fatal("percentage must be set")
	}
	if math.Abs(*km.MatchPercentage-100.0*2/3) > 0.01 {
		t.Errorf("percentage: got %f", *km.MatchPercentage)
	}
	if km.Assessment != "good" {
		t.Errorf("assessment: got %q", km.Assessment)
	}
	if len(km.MissingKeywords) != 1 || km.MissingKeywords[0] != "SQL" {
		t.Errorf("missing: got %v", km.MissingKeywords)
	}
	if len(km.MatchedKeywords) != 2 {
		t.Errorf("matched: got %v", km.MatchedKeywords)
	}
}

func TestAnalyzeKeywordMatchBands(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture(analyzerResume)

	// all requested skills present
	result := a.Analyze(record, skillSet, "Python and Java")
	if result.KeywordMatch.Assessment != "excellent" {
		t.Errorf("full match: got %q", result.KeywordMatch.Assessment)
	}

	// none present
	result = a.Analyze(record, skillSet, "Rust and Scala only")
	if result.KeywordMatch.Assessment != "poor" {
		t.Errorf("no match: got %q", result.KeywordMatch.Assessment)
	}
}

func TestIdentifyCommonIssues(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture("no sections and no contact details in this text at all")

	result := a.Analyze(record, skillSet, "")
	issues := result.CommonIssues

	wantSubstrings := []string{
		"Missing email address",
		"Missing phone number",
		"Missing professional summary section",
		"Missing work experience section",
		"Missing education section",
		"Missing skills section",
	}
	for _, want := range wantSubstrings {
		found := false
		for _, issue := range issues {
			if issue == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected issue %q in %v", want, issues)
		}
	}
}

func TestIdentifyIssuesWeakExperience(t *testing.T) {
	a := newTestAnalyzer()
	record := &parsers.ResumeRecord{
		RawText:  "x",
		Email:    "a@b.com",
		Phone:    "123-456-7890",
		Sections: parsers.SectionMap{},
		Experience: []parsers.ExperienceEntry{
			{Description: "short description without much substance"},
		},
	}

	result := a.Analyze(record, skills.SkillSet{}, "")
	found := false
	for _, issue := range result.CommonIssues {
		if strings.Contains(issue, "Weak experience descriptions") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected weak experience issue in %v", result.CommonIssues)
	}
}

func TestIdentifyIssuesExcessiveLineBreaks(t *testing.T) {
	a := newTestAnalyzer()
	record := &parsers.ResumeRecord{
		RawText:  strings.Repeat("line\n\n\n", 7),
		Email:    "a@b.com",
		Phone:    "123-456-7890",
		Sections: parsers.SectionMap{},
	}

	result := a.Analyze(record, skills.SkillSet{}, "")
	found := false
	for _, issue := range result.CommonIssues {
		if strings.Contains(issue, "excessive line breaks") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected formatting issue in %v", result.CommonIssues)
	}
}

func TestIdentifyIssuesInconsistentDates(t *testing.T) {
	a := newTestAnalyzer()
	record := &parsers.ResumeRecord{
		RawText:  "worked January 2019 to 03/2021 and again in 2022",
		Email:    "a@b.com",
		Phone:    "123-456-7890",
		Sections: parsers.SectionMap{},
	}

	result := a.Analyze(record, skills.SkillSet{}, "")
	found := false
	for _, issue := range result.CommonIssues {
		if issue == "Inconsistent date formats" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected date format issue in %v", result.CommonIssues)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	a := newTestAnalyzer()
	record, skillSet := parseFixture(analyzerResume)

	first := a.Analyze(record, skillSet, "Python and SQL")
	second := a.Analyze(record, skillSet, "Python and SQL")

	if first.Sections.HasAllEssential != second.Sections.HasAllEssential {
		t.Error("section analysis differs across runs")
	}
	if first.ActionVerbs.Count != second.ActionVerbs.Count {
		t.Error("action verb analysis differs across runs")
	}
	if *first.KeywordMatch.MatchPercentage != *second.KeywordMatch.MatchPercentage {
		t.Error("keyword match differs across runs")
	}
	if len(first.CommonIssues) != len(second.CommonIssues) {
		t.Error("issues differ across runs")
	}
}
