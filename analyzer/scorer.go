package analyzer

import "resumeinsight/parsers"

// Component score maxima.
const (
	maxSectionsScore    = 30.0
	maxKeywordsScore    = 25.0
	maxActionVerbsScore = 20.0
	maxWordCountScore   = 15.0
	maxIssuesScore      = 10.0
)

// defaultKeywordScore is the informational score used when no job
// description was supplied; absence of a job description is not a penalty.
const defaultKeywordScore = 15.0

// ScoreResult holds the five component scores, each clamped to its maximum,
// plus the overall 0-100 score and letter grade.
type ScoreResult struct {
	Sections    float64 `json:"sections"`
	Keywords    float64 `json:"keywords"`
	ActionVerbs float64 `json:"action_verbs"`
	WordCount   float64 `json:"word_count"`
	Issues      float64 `json:"issues"`
	Overall     float64 `json:"overall"`
	Grade       string  `json:"grade"`
}

// Score converts the analyses into the weighted overall score.
func Score(record *parsers.ResumeRecord, analysis AnalysisResult) ScoreResult {
	scores := ScoreResult{
		Sections:    scoreSections(record, analysis.Sections),
		Keywords:    scoreKeywords(analysis.KeywordMatch),
		ActionVerbs: scoreActionVerbs(analysis.ActionVerbs),
		WordCount:   scoreWordCount(analysis.WordCount),
		Issues:      scoreIssues(analysis.CommonIssues),
	}
	scores.Overall = scores.Sections + scores.Keywords + scores.ActionVerbs + scores.WordCount + scores.Issues
	scores.Grade = grade(scores.Overall)
	return scores
}

func scoreSections(record *parsers.ResumeRecord, sections SectionAnalysis) float64 {
	present := make(map[string]bool, len(sections.Present))
	for _, key := range sections.Present {
		present[key] = true
	}

	score := 0.0
	for _, key := range essentialSections {
		if present[key] {
			score += 5
		}
	}
	for _, key := range recommendedSections {
		if present[key] {
			score += 2.5
		}
	}
	if record.Email != parsers.EmailNotFound && record.Phone != parsers.PhoneNotFound {
		score += 5
	}
	return min(score, maxSectionsScore)
}

func scoreKeywords(match KeywordMatchAnalysis) float64 {
	if match.MatchPercentage == nil {
		return defaultKeywordScore
	}
	return min(*match.MatchPercentage*0.25, maxKeywordsScore)
}

func scoreActionVerbs(verbs ActionVerbAnalysis) float64 {
	var score float64
	if verbs.Assessment == "good" {
		score = 15
		if verbs.UniqueVerbs >= 10 {
			score += 5
		}
	} else {
		score = min(verbs.Density*200, 15)
	}
	return min(score, maxActionVerbsScore)
}

func scoreWordCount(wc WordCountAnalysis) float64 {
	score := 0.0
	switch wc.Assessment.Total {
	case "good":
		score += 10
	case "too_short":
		score += 5
	case "too_long":
		score += 7
	}
	switch wc.Assessment.Summary {
	case "good":
		score += 5
	case "too_short":
		score += 2
	case "too_long":
		score += 3
	}
	return min(score, maxWordCountScore)
}

func scoreIssues(issues []string) float64 {
	return max(maxIssuesScore-2*float64(len(issues)), 0)
}

func grade(overall float64) string {
	switch {
	case overall >= 90:
		return "A"
	case overall >= 80:
		return "B"
	case overall >= 70:
		return "C"
	case overall >= 60:
		return "D"
	default:
		return "F"
	}
}
