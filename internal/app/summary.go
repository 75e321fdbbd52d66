package app

import "resume-analyzer/internal/model"

// Summary describes the loaded resume set for /status.
type Summary struct {
	Count      int            `json:"count"`
	FileTypes  map[string]int `json:"file_types"`
	TotalWords int            `json:"total_words"`
	AvgWords   int            `json:"avg_words"`
}

func Summarize(sess *model.Session) Summary {
	summary := Summary{FileTypes: map[string]int{}}
	if sess == nil {
		return summary
	}
	for _, doc := range sess.Documents {
		summary.Count++
		summary.FileTypes[doc.FileType]++
		summary.TotalWords += doc.WordCount
	}
	if summary.Count > 0 {
		summary.AvgWords = summary.TotalWords / summary.Count
	}
	return summary
}
