package app

import "testing"

func newTestClassifier() *Classifier {
	return NewClassifier(
		[]string{"compare", "versus", "rank", "best", "top 3"},
		[]string{"who has", "which candidate", "find", "skilled in"},
	)
}

func TestClassifyComparison(t *testing.T) {
	c := newTestClassifier()

	for _, q := range []string{
		"Compare the two backend engineers",
		"Rank the candidates by experience",
		"Give me the top 3 applicants",
	} {
		if got := c.Classify(q); got != CategoryComparison {
			t.Errorf("Classify(%q) = %q, want comparison", q, got)
		}
	}
}

func TestClassifySearch(t *testing.T) {
	c := newTestClassifier()

	for _, q := range []string{
		"Who has worked with Kubernetes?",
		"Which candidate studied abroad?",
		"Find someone skilled in Python",
	} {
		if got := c.Classify(q); got != CategorySearch {
			t.Errorf("Classify(%q) = %q, want search", q, got)
		}
	}
}

func TestClassifyDefaultsToGeneral(t *testing.T) {
	c := newTestClassifier()

	if got := c.Classify("Summarize the third resume"); got != CategoryGeneral {
		t.Errorf("Classify = %q, want general", got)
	}
	if got := c.Classify(""); got != CategoryGeneral {
		t.Errorf("Classify(empty) = %q, want general", got)
	}
}

// A question carrying both a comparison term and a search term must classify
// as comparison: the comparison check runs first.
func TestClassifyComparisonWinsOnOverlap(t *testing.T) {
	c := newTestClassifier()

	for _, q := range []string{
		"Who has the best qualifications? Compare them.",
		"Which candidate should I rank first?",
		"Find and compare the strongest applicants",
	} {
		if got := c.Classify(q); got != CategoryComparison {
			t.Errorf("Classify(%q) = %q, want comparison", q, got)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newTestClassifier()

	q := "who has the best track record"
	first := c.Classify(q)
	for i := 0; i < 10; i++ {
		if got := c.Classify(q); got != first {
			t.Fatalf("Classify not deterministic: got %q then %q", first, got)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := newTestClassifier()

	if got := c.Classify("COMPARE THESE RESUMES"); got != CategoryComparison {
		t.Errorf("Classify = %q, want comparison", got)
	}
	if got := c.Classify("WHO HAS a PhD?"); got != CategorySearch {
		t.Errorf("Classify = %q, want search", got)
	}
}
