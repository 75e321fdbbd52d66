package app

import (
	"regexp"
	"strings"
)

// Reject reason codes reported back to the uploader.
const (
	ReasonTextTooShort    = "text_too_short"
	ReasonMissingKeywords = "missing_keywords"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b\(?\d{3}\)?[\s.-]?\d{3}[-.]?\d{4}\b`)
)

// Verdict is the outcome of the heuristic resume gate. False positives and
// negatives are an accepted tradeoff; this is not a learned classifier.
type Verdict struct {
	Accepted       bool     `json:"accepted"`
	Reason         string   `json:"reason,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	WordCount      int      `json:"word_count"`
	KeywordMatches int      `json:"keyword_matches"`
}

// ResumeValidator checks that extracted text plausibly resembles a resume:
// a minimum length and a minimum number of resume-indicative keywords.
type ResumeValidator struct {
	minTextChars      int
	minKeywordMatches int
	keywords          []string
}

func NewResumeValidator(minTextChars, minKeywordMatches int, keywords []string) *ResumeValidator {
	if minTextChars <= 0 {
		minTextChars = 100
	}
	if minKeywordMatches <= 0 {
		minKeywordMatches = 3
	}
	return &ResumeValidator{
		minTextChars:      minTextChars,
		minKeywordMatches: minKeywordMatches,
		keywords:          lowerAll(keywords),
	}
}

func (v *ResumeValidator) Validate(text string) Verdict {
	trimmed := strings.TrimSpace(text)
	verdict := Verdict{WordCount: len(strings.Fields(trimmed))}

	if len(trimmed) < v.minTextChars {
		verdict.Reason = ReasonTextTooShort
		return verdict
	}

	lower := strings.ToLower(trimmed)
	for _, kw := range v.keywords {
		if strings.Contains(lower, kw) {
			verdict.KeywordMatches++
		}
	}
	if verdict.KeywordMatches < v.minKeywordMatches {
		verdict.Reason = ReasonMissingKeywords
		return verdict
	}

	verdict.Accepted = true
	if !emailPattern.MatchString(trimmed) && !phonePattern.MatchString(trimmed) {
		verdict.Warnings = append(verdict.Warnings, "no contact information detected")
	}
	if verdict.WordCount < 100 {
		verdict.Warnings = append(verdict.Warnings, "resume seems quite short")
	}
	return verdict
}
