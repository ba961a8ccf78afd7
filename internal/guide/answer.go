// ABOUTME: Visitor answer generation with a template fallback
// ABOUTME: The responder is optional; without one every answer is templated
package guide

import (
	"fmt"

	"github.com/artlens/gallery-guide/internal/models"
)

// Responder writes a visitor-facing answer about matched artworks.
// Implemented by llm.OpenAIClient.
type Responder interface {
	GenerateGuideResponse(query string, artworks []models.Artwork) (string, error)
}

const noMatchAnswer = "I couldn't find any artworks matching your question. " +
	"Try asking about a style, an artist, or what you'd like to see."

// templateAnswer builds a canned answer from the best match, used when no
// responder is configured or the responder fails
func templateAnswer(results []models.SearchResult) string {
	if len(results) == 0 {
		return noMatchAnswer
	}

	top := results[0].Artwork
	answer := fmt.Sprintf("%s by %s is a fascinating piece.", top.Title, top.Artist)
	if top.Description != "" {
		answer += " " + excerptText(top.Description, 150)
	}
	return answer
}

func excerptText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
