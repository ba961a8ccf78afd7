// ABOUTME: OpenAI client for embeddings and visitor-facing answers
// ABOUTME: text-embedding-3-small at reduced dimensions, gpt-4o-mini for chat
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/artlens/gallery-guide/internal/models"
	"github.com/artlens/gallery-guide/internal/util"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)
	// DefaultDimensions keeps index memory small; text-embedding-3-small
	// supports native dimension reduction
	DefaultDimensions = 384
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	Dimensions     int
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      DefaultChatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		Dimensions:     DefaultDimensions,
		Timeout:        30 * time.Second,
		MaxRetries:     3,
		RetryDelay:     2 * time.Second,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel string
	dimensions     int
	timeout        time.Duration
	maxRetries     int
	retryDelay     time.Duration
}

// NewOpenAIClient creates a client with the given API key and defaults
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	embeddingModel := config.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	dimensions := config.Dimensions
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClient{
		client:         openai.NewClient(config.APIKey),
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
		dimensions:     dimensions,
		timeout:        timeout,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
	}, nil
}

// GenerateEmbedding returns an embedding vector for the given text
func (c *OpenAIClient) GenerateEmbedding(text string) ([]float64, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.Backoff(c.retryDelay, attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)

		resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input:      []string{text},
			Model:      openai.EmbeddingModel(c.embeddingModel),
			Dimensions: c.dimensions,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Data) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}

		cancel()
		return embedding64, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", c.maxRetries+1, lastErr)
}

// GenerateGuideResponse writes a short visitor-facing answer about the
// matched artworks. Callers fall back to a template answer on error.
func (c *OpenAIClient) GenerateGuideResponse(query string, artworks []models.Artwork) (string, error) {
	if len(artworks) == 0 {
		return "", fmt.Errorf("no artworks to describe")
	}

	systemPrompt := `You are a friendly museum guide. Given a visitor's question and the
artworks that best match it, write a short engaging answer (2-3 sentences)
that helps the visitor appreciate the works. Mention titles and artists
naturally. Do not invent facts not present in the artwork details.`

	var sb strings.Builder
	fmt.Fprintf(&sb, "Visitor question: %s\n\nMatched artworks:\n", query)
	for _, a := range artworks {
		fmt.Fprintf(&sb, "- %q by %s", a.Title, a.Artist)
		if a.Style != "" {
			fmt.Fprintf(&sb, " (%s)", a.Style)
		}
		if a.Description != "" {
			fmt.Fprintf(&sb, ": %s", a.Description)
		}
		sb.WriteString("\n")
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.Backoff(c.retryDelay, attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: sb.String(),
				},
			},
			Temperature: 0.7,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		answer := strings.TrimSpace(resp.Choices[0].Message.Content)
		cancel()
		return answer, nil
	}

	return "", fmt.Errorf("failed to generate guide response after %d attempts: %w", c.maxRetries+1, lastErr)
}
