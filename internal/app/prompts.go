package app

import "fmt"

const systemPrompt = "You are an HR assistant analyzing resumes. Answer based only on the resume data provided. If the data does not contain enough information, say so. Do not make up facts."

const comparisonTemplate = `Based on the resume data provided, answer the comparison question naturally and conversationally.

Question: %s

Resume Data:
%s

Provide a clear, direct answer. Only include tables or structured data if the question specifically asks for comparison, ranking, or tabular format. Focus on relevant qualifications and experience, with brief reasoning when helpful.`

const searchTemplate = `Based on the resume data provided, find candidates that match the search criteria.

Question: %s

Resume Data:
%s

List the matching candidates and briefly explain their relevant qualifications. Keep the response conversational and avoid unnecessary formatting, scores, or ratings.`

const generalTemplate = `Based on the resume data provided, answer the question in a natural, conversational way.

Question: %s

Resume Data:
%s

Provide a clear, direct answer that's helpful for HR decision-making, without unnecessary complexity.`

func buildPrompt(category Category, question, context string) string {
	switch category {
	case CategoryComparison:
		return fmt.Sprintf(comparisonTemplate, question, context)
	case CategorySearch:
		return fmt.Sprintf(searchTemplate, question, context)
	default:
		return fmt.Sprintf(generalTemplate, question, context)
	}
}
