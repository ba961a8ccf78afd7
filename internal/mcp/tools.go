// ABOUTME: MCP tool definitions and registration for the gallery guide
// ABOUTME: Exposes query, click, feedback, stats and top-artwork tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/artlens/gallery-guide/internal/guide"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, service *guide.Service) *Handlers {
	handlers := &Handlers{service: service}

	// 1. ask_gallery - Answer a visitor's question about the collection
	server.AddTool(mcp.Tool{
		Name:        "ask_gallery",
		Description: "Ask the gallery guide a question about the collection. Returns an answer plus the matched artworks with similarity scores.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Visitor question, e.g. 'show me impressionist landscapes'",
				},
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional session id to group questions from one visit",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Visitor language code (default: en)",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.AskGallery)

	// 2. record_click - Record that a visitor opened an artwork
	server.AddTool(mcp.Tool{
		Name:        "record_click",
		Description: "Record that the visitor clicked into an artwork from a previous ask_gallery result.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query_id": map[string]interface{}{
					"type":        "string",
					"description": "Query id from the ask_gallery response",
				},
				"artwork_id": map[string]interface{}{
					"type":        "number",
					"description": "Clicked artwork id",
				},
				"duration": map[string]interface{}{
					"type":        "number",
					"description": "Seconds the visitor viewed the artwork",
					"default":     0,
				},
			},
			Required: []string{"query_id", "artwork_id"},
		},
	}, handlers.RecordClick)

	// 3. record_feedback - Rate a query's results
	server.AddTool(mcp.Tool{
		Name:        "record_feedback",
		Description: "Record visitor feedback (1-5) for the results of a previous query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query_id": map[string]interface{}{
					"type":        "string",
					"description": "Query id from the ask_gallery response",
				},
				"score": map[string]interface{}{
					"type":        "number",
					"description": "Rating from 1 (poor) to 5 (excellent)",
				},
				"comment": map[string]interface{}{
					"type":        "string",
					"description": "Optional free-text comment",
				},
			},
			Required: []string{"query_id", "score"},
		},
	}, handlers.RecordFeedback)

	// 4. gallery_stats - Traffic stats for a period
	server.AddTool(mcp.Tool{
		Name:        "gallery_stats",
		Description: "Get visitor traffic statistics (query counts, unique visitors, response times, hourly buckets).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"period": map[string]interface{}{
					"type":        "string",
					"description": "Stats period: 24h, 7d, 30d or all (default: 24h)",
					"default":     "24h",
				},
			},
		},
	}, handlers.GalleryStats)

	// 5. top_artworks - Demand-ranked artworks
	server.AddTool(mcp.Tool{
		Name:        "top_artworks",
		Description: "List artworks ranked by visitor demand score, with click-through rates.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"period": map[string]interface{}{
					"type":        "string",
					"description": "Ranking period: 24h, 7d, 30d or all (default: all)",
					"default":     "all",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum artworks to return (default: 10)",
					"default":     10,
				},
			},
		},
	}, handlers.TopArtworks)

	return handlers
}
