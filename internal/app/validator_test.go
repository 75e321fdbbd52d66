package app

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Doe - jane.doe@example.com - 555-123-4567
Work Experience: five years as a backend engineer building payment systems.
Education: BSc Computer Science, State University.
Skills: Go, SQL, Kubernetes, distributed systems, monitoring.`

func newTestValidator() *ResumeValidator {
	return NewResumeValidator(100, 3, []string{
		"experience", "education", "skills", "work", "university",
	})
}

func TestValidateAccepts(t *testing.T) {
	v := newTestValidator()

	verdict := v.Validate(sampleResume)
	if !verdict.Accepted {
		t.Fatalf("expected accept, got reason %q", verdict.Reason)
	}
	if verdict.KeywordMatches < 3 {
		t.Errorf("keyword matches = %d, want >= 3", verdict.KeywordMatches)
	}
	if verdict.WordCount == 0 {
		t.Error("word count not populated")
	}
	for _, w := range verdict.Warnings {
		if w == "no contact information detected" {
			t.Error("contact warning raised despite email and phone present")
		}
	}
}

func TestValidateRejectsShortText(t *testing.T) {
	v := newTestValidator()

	verdict := v.Validate("too short")
	if verdict.Accepted {
		t.Fatal("expected reject")
	}
	if verdict.Reason != ReasonTextTooShort {
		t.Errorf("reason = %q, want %q", verdict.Reason, ReasonTextTooShort)
	}
}

func TestValidateRejectsMissingKeywords(t *testing.T) {
	v := newTestValidator()

	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 10)
	verdict := v.Validate(text)
	if verdict.Accepted {
		t.Fatal("expected reject")
	}
	if verdict.Reason != ReasonMissingKeywords {
		t.Errorf("reason = %q, want %q", verdict.Reason, ReasonMissingKeywords)
	}
}

func TestValidateWarnsOnMissingContact(t *testing.T) {
	v := newTestValidator()

	text := strings.Repeat("work experience education skills university ", 10)
	verdict := v.Validate(text)
	if !verdict.Accepted {
		t.Fatalf("expected accept, got reason %q", verdict.Reason)
	}
	found := false
	for _, w := range verdict.Warnings {
		if w == "no contact information detected" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected contact warning, got %v", verdict.Warnings)
	}
}
