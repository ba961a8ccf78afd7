// ABOUTME: MCP tool handler implementations for the gallery guide
// ABOUTME: Thin adapters from tool arguments onto the guide service
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/artlens/gallery-guide/internal/analytics"
	"github.com/artlens/gallery-guide/internal/guide"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	service *guide.Service
}

// AskGallery handles the ask_gallery tool
func (h *Handlers) AskGallery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	meta := guide.SessionMetadata{
		SessionID:  request.GetString("session_id", ""),
		IP:         "mcp",
		DeviceType: "mcp",
		Language:   request.GetString("language", "en"),
	}

	result, err := h.service.ProcessQuery(query, meta)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	artworks := make([]map[string]interface{}, 0, len(result.Results))
	for _, r := range result.Results {
		artworks = append(artworks, map[string]interface{}{
			"artwork_id":       r.Artwork.ID,
			"title":            r.Artwork.Title,
			"artist":           r.Artwork.Artist,
			"gallery_location": r.Artwork.GalleryLocation,
			"similarity_score": r.SimilarityScore,
			"matched_chunk":    r.MatchedChunk,
		})
	}

	response := map[string]interface{}{
		"query_id":      result.QueryID,
		"session_id":    result.SessionID,
		"answer":        result.Answer,
		"artworks":      artworks,
		"ai_generated":  result.AIGenerated,
		"response_time": result.ResponseTime,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RecordClick handles the record_click tool
func (h *Handlers) RecordClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryID, err := request.RequireString("query_id")
	if err != nil {
		return mcp.NewToolResultError("query_id argument is required and must be a string"), nil
	}
	artworkID, err := request.RequireInt("artwork_id")
	if err != nil {
		return mcp.NewToolResultError("artwork_id argument is required and must be a number"), nil
	}
	duration := request.GetFloat("duration", 0)

	if err := h.service.RecordClick(queryID, artworkID, duration); err != nil {
		if errors.Is(err, analytics.ErrInteractionNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no interaction found for query %s and artwork %d", queryID, artworkID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to record click: %v", err)), nil
	}

	responseJSON, err := json.Marshal(map[string]interface{}{
		"success":    true,
		"query_id":   queryID,
		"artwork_id": artworkID,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RecordFeedback handles the record_feedback tool
func (h *Handlers) RecordFeedback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryID, err := request.RequireString("query_id")
	if err != nil {
		return mcp.NewToolResultError("query_id argument is required and must be a string"), nil
	}
	score, err := request.RequireInt("score")
	if err != nil {
		return mcp.NewToolResultError("score argument is required and must be a number"), nil
	}
	comment := request.GetString("comment", "")

	feedbackID, err := h.service.RecordFeedback(queryID, score, comment)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidScore):
			return mcp.NewToolResultError("score must be between 1 and 5"), nil
		case errors.Is(err, analytics.ErrQueryNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("unknown query id %s", queryID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to record feedback: %v", err)), nil
	}

	responseJSON, err := json.Marshal(map[string]interface{}{
		"success":     true,
		"feedback_id": feedbackID,
		"query_id":    queryID,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GalleryStats handles the gallery_stats tool
func (h *Handlers) GalleryStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	period := request.GetString("period", "24h")

	stats, err := h.service.Store().GetSystemStats(period)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	responseJSON, err := json.Marshal(stats)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// TopArtworks handles the top_artworks tool
func (h *Handlers) TopArtworks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	period := request.GetString("period", "all")
	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	artworks, err := h.service.Store().GetTopArtworks(period, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get top artworks: %v", err)), nil
	}

	responseJSON, err := json.Marshal(map[string]interface{}{
		"period":   period,
		"artworks": artworks,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
