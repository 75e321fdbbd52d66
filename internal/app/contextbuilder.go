package app

import (
	"fmt"
	"strings"

	"resume-analyzer/internal/model"
)

const defaultPerDocChars = 2000

// ContextBuilder assembles the text blob sent to the model alongside a
// question. Each document's text is truncated to the per-document budget
// independently, so one large resume never starves the others. Documents
// appear in upload order.
type ContextBuilder struct {
	perDocChars int
}

func NewContextBuilder(perDocChars int) *ContextBuilder {
	if perDocChars <= 0 {
		perDocChars = defaultPerDocChars
	}
	return &ContextBuilder{perDocChars: perDocChars}
}

// Build returns the empty string when no documents are loaded; callers must
// short-circuit instead of sending an empty context to the provider.
func (b *ContextBuilder) Build(docs []model.Document) string {
	if len(docs) == 0 {
		return ""
	}

	var parts []string
	for i, doc := range docs {
		parts = append(parts,
			fmt.Sprintf("RESUME %d - %s:", i+1, doc.Filename),
			fmt.Sprintf("File Type: %s", doc.FileType),
			fmt.Sprintf("Word Count: %d", doc.WordCount),
			"Content:",
			truncateRunes(doc.Text, b.perDocChars),
			strings.Repeat("-", 50),
		)
	}
	return strings.Join(parts, "\n")
}

// truncateRunes cuts text to at most budget runes, ellipsis included.
func truncateRunes(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	if budget <= 3 {
		return string(runes[:budget])
	}
	return string(runes[:budget-3]) + "..."
}
