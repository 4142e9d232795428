package analyzer

import "strings"

// SuggestionSet holds improvement suggestions bucketed by priority. Rules
// only ever append; duplicates produced by independent rules are kept.
type SuggestionSet struct {
	HighPriority   []string `json:"high_priority"`
	MediumPriority []string `json:"medium_priority"`
	LowPriority    []string `json:"low_priority"`
}

// GenerateSuggestions derives prioritized suggestions from the analyses and
// scores. Rules run in a fixed order so output is deterministic.
func GenerateSuggestions(analysis AnalysisResult, scores ScoreResult) SuggestionSet {
	s := SuggestionSet{
		HighPriority:   []string{},
		MediumPriority: []string{},
		LowPriority:    []string{},
	}

	for _, section := range analysis.Sections.MissingEssential {
		s.HighPriority = append(s.HighPriority, "Add a "+formatSectionName(section)+" section to your resume")
	}
	for _, section := range analysis.Sections.MissingRecommended {
		s.MediumPriority = append(s.MediumPriority, "Consider adding a "+formatSectionName(section)+" section to strengthen your resume")
	}

	if assessment := analysis.KeywordMatch.Assessment; assessment == "poor" || assessment == "fair" {
		missing := analysis.KeywordMatch.MissingKeywords
		if len(missing) > 0 {
			if len(missing) <= 5 {
				s.HighPriority = append(s.HighPriority, "Add these missing keywords from the job description: "+strings.Join(missing, ", "))
			} else {
				s.HighPriority = append(s.HighPriority, "Add these important keywords from the job description: "+strings.Join(missing[:5], ", ")+" and others")
			}
		}
	}

	if analysis.ActionVerbs.Assessment == "needs_improvement" {
		s.MediumPriority = append(s.MediumPriority, "Use more action verbs in your experience descriptions (e.g., Achieved, Improved, Developed, Implemented, Led)")
	}

	switch analysis.WordCount.Assessment.Total {
	case "too_short":
		s.MediumPriority = append(s.MediumPriority, "Your resume is too short. Add more detailed information about your experience, skills, and achievements")
	case "too_long":
		s.MediumPriority = append(s.MediumPriority, "Your resume is quite long. Consider condensing it to be more concise and focused")
	}

	switch analysis.WordCount.Assessment.Summary {
	case "too_short":
		s.LowPriority = append(s.LowPriority, "Expand your professional summary to better highlight your qualifications")
	case "too_long":
		s.LowPriority = append(s.LowPriority, "Shorten your professional summary to be more concise and impactful")
	}

	for _, issue := range analysis.CommonIssues {
		switch {
		case strings.Contains(issue, "Missing email") || strings.Contains(issue, "Missing phone"):
			s.HighPriority = append(s.HighPriority, "Add your contact information (email and phone number)")
		case strings.Contains(issue, "Weak experience descriptions"):
			s.HighPriority = append(s.HighPriority, "Strengthen your experience descriptions by adding specific achievements and using action verbs")
		case strings.Contains(issue, "Inconsistent date formats"):
			s.LowPriority = append(s.LowPriority, "Use consistent date formats throughout your resume")
		case strings.Contains(issue, "Potential formatting issues"):
			s.MediumPriority = append(s.MediumPriority, "Fix formatting issues to improve readability")
		}
	}

	if scores.Overall < 70 {
		s.HighPriority = append(s.HighPriority, "Consider a complete resume overhaul to better highlight your qualifications")
	} else if scores.Overall < 80 {
		s.MediumPriority = append(s.MediumPriority, "Make several key improvements to strengthen your resume's impact")
	}

	return s
}

func formatSectionName(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
