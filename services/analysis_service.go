package services

import (
	"resumeinsight/analyzer"
	"resumeinsight/parsers"
	"resumeinsight/skills"
)

// RawDocument is one uploaded resume: its bytes, declared format, and an
// optional job description to compare against. It is consumed once by a
// single Analyze call and then discarded.
type RawDocument struct {
	Data           []byte
	Format         string
	JobDescription string
}

// AnalysisBundle is the complete output of one analysis run.
type AnalysisBundle struct {
	Resume      *parsers.ResumeRecord   `json:"resume_data"`
	Skills      skills.SkillSet         `json:"skills"`
	Analysis    analyzer.AnalysisResult `json:"analysis"`
	Scores      analyzer.ScoreResult    `json:"scores"`
	Suggestions analyzer.SuggestionSet  `json:"suggestions"`
}

// AnalysisService runs the full extraction, matching, analysis, scoring,
// and suggestion pipeline. It holds no per-request state; the taxonomy is
// injected once at construction and shared read-only, so a single service
// instance serves concurrent requests safely.
type AnalysisService struct {
	extractor *parsers.DocumentExtractor
	parser    *parsers.ResumeParser
	matcher   *skills.Matcher
	analyzer  *analyzer.Analyzer
}

// NewAnalysisService builds the pipeline around one immutable taxonomy.
func NewAnalysisService(tax *skills.Taxonomy) *AnalysisService {
	matcher := skills.NewMatcher(tax)
	return &AnalysisService{
		extractor: parsers.NewDocumentExtractor(),
		parser:    parsers.NewResumeParser(),
		matcher:   matcher,
		analyzer:  analyzer.NewAnalyzer(matcher),
	}
}

// Analyze runs the whole pipeline for one document. Document-level
// failures (unsupported format, unreadable content) are returned as errors
// with no partial result; missing fields inside a readable document degrade
// to sentinels and lower scores instead.
func (s *AnalysisService) Analyze(doc RawDocument) (*AnalysisBundle, error) {
	text, err := s.extractor.Extract(doc.Data, doc.Format)
	if err != nil {
		return nil, err
	}

	record := s.parser.Parse(text)
	skillSet := s.matcher.MatchResume(text, record.Skills)
	analysis := s.analyzer.Analyze(record, skillSet, doc.JobDescription)
	scores := analyzer.Score(record, analysis)
	suggestions := analyzer.GenerateSuggestions(analysis, scores)

	return &AnalysisBundle{
		Resume:      record,
		Skills:      skillSet,
		Analysis:    analysis,
		Scores:      scores,
		Suggestions: suggestions,
	}, nil
}
