package analyzer

import (
	"math"
	"testing"

	"resumeinsight/parsers"
	"resumeinsight/skills"
)

func floatPtr(v float64) *float64 { return &v }

func TestScoreSectionsMaximum(t *testing.T) {
	record := &parsers.ResumeRecord{
		Email: "jane@example.com",
		Phone: "(123) 456-7890",
	}
	analysis := AnalysisResult{
		Sections: SectionAnalysis{
			Present: []string{"summary", "education", "experience", "skills", "projects", "certifications"},
		},
	}

	scores := Score(record, analysis)
	// 4 essential x 5 + 2 recommended x 2.5 + contact bonus 5
	if scores.Sections != 30 {
		t.Errorf("sections: got %f", scores.Sections)
	}
}

func TestScoreSectionsNoContactBonus(t *testing.T) {
	record := &parsers.ResumeRecord{
		Email: parsers.EmailNotFound,
		Phone: "(123) 456-7890",
	}
	analysis := AnalysisResult{
		Sections: SectionAnalysis{
			Present: []string{"summary", "education", "experience", "skills"},
		},
	}

	scores := Score(record, analysis)
	if scores.Sections != 20 {
		t.Errorf("sections: got %f", scores.Sections)
	}
}

func TestScoreKeywordsDefaultWithoutJobDescription(t *testing.T) {
	record := &parsers.ResumeRecord{Email: parsers.EmailNotFound, Phone: parsers.PhoneNotFound}
	analysis := AnalysisResult{
		KeywordMatch: KeywordMatchAnalysis{MatchPercentage: nil},
	}

	scores := Score(record, analysis)
	if scores.Keywords != 15 {
		t.Errorf("keywords: got %f", scores.Keywords)
	}
}

func TestScoreKeywordsScaled(t *testing.T) {
	record := &parsers.ResumeRecord{Email: parsers.EmailNotFound, Phone: parsers.PhoneNotFound}

	analysis := AnalysisResult{
		KeywordMatch: KeywordMatchAnalysis{MatchPercentage: floatPtr(100.0 * 2 / 3)},
	}
	scores := Score(record, analysis)
	if math.Abs(scores.Keywords-100.0*2/3*0.25) > 0.001 {
		t.Errorf("keywords: got %f", scores.Keywords)
	}

	analysis.KeywordMatch.MatchPercentage = floatPtr(100)
	scores = Score(record, analysis)
	if scores.Keywords != 25 {
		t.Errorf("keywords at full match: got %f", scores.Keywords)
	}
}

func TestScoreActionVerbs(t *testing.T) {
	record := &parsers.ResumeRecord{Email: parsers.EmailNotFound, Phone: parsers.PhoneNotFound}

	// good assessment with many unique verbs gets the bonus
	analysis := AnalysisResult{
		ActionVerbs: ActionVerbAnalysis{Assessment: "good", UniqueVerbs: 12, Density: 0.08},
	}
	scores := Score(record, analysis)
	if scores.ActionVerbs != 20 {
		t.Errorf("with bonus: got %f", scores.ActionVerbs)
	}

	// good assessment, few unique verbs
	analysis.ActionVerbs = ActionVerbAnalysis{Assessment: "good", UniqueVerbs: 4, Density: 0.06}
	scores = Score(record, analysis)
	if scores.ActionVerbs != 15 {
		t.Errorf("without bonus: got %f", scores.ActionVerbs)
	}

	// needs improvement scales with density
	analysis.ActionVerbs = ActionVerbAnalysis{Assessment: "needs_improvement", Density: 0.02}
	scores = Score(record, analysis)
	if math.Abs(scores.ActionVerbs-4) > 0.001 {
		t.Errorf("density-scaled: got %f", scores.ActionVerbs)
	}

	// zero experience means zero score
	analysis.ActionVerbs = ActionVerbAnalysis{Assessment: "needs_improvement", Density: 0}
	scores = Score(record, analysis)
	if scores.ActionVerbs != 0 {
		t.Errorf("zero density: got %f", scores.ActionVerbs)
	}
}

func TestScoreWordCount(t *testing.T) {
	record := &parsers.ResumeRecord{Email: parsers.EmailNotFound, Phone: parsers.PhoneNotFound}

	analysis := AnalysisResult{
		WordCount: WordCountAnalysis{Assessment: WordCountAssessment{Total: "good", Summary: "good"}},
	}
	scores := Score(record, analysis)
	if scores.WordCount != 15 {
		t.Errorf("both good: got %f", scores.WordCount)
	}

	analysis.WordCount.Assessment = WordCountAssessment{Total: "too_short", Summary: "too_long"}
	scores = Score(record, analysis)
	if scores.WordCount != 8 {
		t.Errorf("short+long: got %f", scores.WordCount)
	}

	// no summary section: only the total contributes
	analysis.WordCount.Assessment = WordCountAssessment{Total: "too_long"}
	scores = Score(record, analysis)
	if scores.WordCount != 7 {
		t.Errorf("total only: got %f", scores.WordCount)
	}
}

func TestScoreIssuesPenalty(t *testing.T) {
	record := &parsers.ResumeRecord{Email: parsers.EmailNotFound, Phone: parsers.PhoneNotFound}

	analysis := AnalysisResult{}
	if scores := Score(record, analysis); scores.Issues != 10 {
		t.Errorf("no issues: got %f", scores.Issues)
	}

	analysis.CommonIssues = []string{"a", "b", "c"}
	if scores := Score(record, analysis); scores.Issues != 4 {
		t.Errorf("3 issues: got %f", scores.Issues)
	}

	analysis.CommonIssues = []string{"a", "b", "c", "d", "e", "f", "g"}
	if scores := Score(record, analysis); scores.Issues != 0 {
		t.Errorf("issues floor at 0: got %f", scores.Issues)
	}
}

func TestScoreGradeBands(t *testing.T) {
	cases := []struct {
		overall float64
		grade   string
	}{
		{95, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"}, {69.9, "D"}, {60, "D"}, {59.9, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := grade(tc.overall); got != tc.grade {
			t.Errorf("grade(%f): got %q, want %q", tc.overall, got, tc.grade)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	record := &parsers.ResumeRecord{
		Email: "jane@example.com",
		Phone: "(123) 456-7890",
	}
	// everything at its best
	analysis := AnalysisResult{
		Sections: SectionAnalysis{
			Present: []string{"summary", "education", "experience", "skills", "projects", "certifications", "contact", "languages"},
		},
		KeywordMatch: KeywordMatchAnalysis{MatchPercentage: floatPtr(100)},
		ActionVerbs:  ActionVerbAnalysis{Assessment: "good", UniqueVerbs: 20, Density: 0.2},
		WordCount:    WordCountAnalysis{Assessment: WordCountAssessment{Total: "good", Summary: "good"}},
	}
	scores := Score(record, analysis)
	if scores.Overall != 100 {
		t.Errorf("best case overall: got %f", scores.Overall)
	}
	if scores.Grade != "A" {
		t.Errorf("best case grade: got %q", scores.Grade)
	}

	// everything at its worst
	worst := Score(&parsers.ResumeRecord{Email: parsers.EmailNotFound, Phone: parsers.PhoneNotFound}, AnalysisResult{
		KeywordMatch: KeywordMatchAnalysis{MatchPercentage: floatPtr(0)},
		ActionVerbs:  ActionVerbAnalysis{Assessment: "needs_improvement", Density: 0},
		CommonIssues: []string{"a", "b", "c", "d", "e", "f"},
	})
	if worst.Overall < 0 {
		t.Errorf("overall must never go below 0, got %f", worst.Overall)
	}
	if worst.Grade != "F" {
		t.Errorf("worst case grade: got %q", worst.Grade)
	}
}

func TestScoreFullPipeline(t *testing.T) {
	a := newTestAnalyzer()
	record := parsers.NewResumeParser().Parse(analyzerResume)
	matcher := skills.NewMatcher(skills.DefaultTaxonomy())
	skillSet := matcher.MatchResume(analyzerResume, record.Skills)

	analysis := a.Analyze(record, skillSet, "")
	scores := Score(record, analysis)

	if scores.Overall < 0 || scores.Overall > 100 {
		t.Errorf("overall out of bounds: %f", scores.Overall)
	}
	sum := scores.Sections + scores.Keywords + scores.ActionVerbs + scores.WordCount + scores.Issues
	if math.Abs(scores.Overall-sum) > 0.001 {
		t.Errorf("overall %f is not the sum of components %f", scores.Overall, sum)
	}
	if scores.Sections > 30 || scores.Keywords > 25 || scores.ActionVerbs > 20 || scores.WordCount > 15 || scores.Issues > 10 {
		t.Error("component scores exceed their maxima")
	}
}
