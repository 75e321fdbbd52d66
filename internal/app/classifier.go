package app

import "strings"

// Category routes a question to the prompt template used to answer it.
type Category string

const (
	CategoryComparison Category = "comparison"
	CategorySearch     Category = "search"
	CategoryGeneral    Category = "general"
)

// Classifier matches a question against configured keyword lists. The
// comparison check runs before the search check, so a question carrying terms
// from both lists classifies as comparison. Pure and deterministic.
type Classifier struct {
	comparison []string
	search     []string
}

func NewClassifier(comparisonKeywords, searchKeywords []string) *Classifier {
	return &Classifier{
		comparison: lowerAll(comparisonKeywords),
		search:     lowerAll(searchKeywords),
	}
}

func (c *Classifier) Classify(question string) Category {
	q := strings.ToLower(question)
	if containsAny(q, c.comparison) {
		return CategoryComparison
	}
	if containsAny(q, c.search) {
		return CategorySearch
	}
	return CategoryGeneral
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
