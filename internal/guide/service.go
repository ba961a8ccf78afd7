// ABOUTME: Guide service orchestrating search, answers and analytics
// ABOUTME: Every processed query leaves a full trail in the analytics store
package guide

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artlens/gallery-guide/internal/analytics"
	"github.com/artlens/gallery-guide/internal/index"
	"github.com/artlens/gallery-guide/internal/models"
)

// Options configures query handling
type Options struct {
	TopK                int
	SimilarityThreshold float64
}

// QueryResult is the full outcome of one visitor question
type QueryResult struct {
	QueryID      string                `json:"query_id"`
	Answer       string                `json:"answer"`
	Results      []models.SearchResult `json:"results"`
	ResponseTime float64               `json:"response_time"`
	AIGenerated  bool                  `json:"ai_generated"`
	SessionID    string                `json:"session_id"`
}

// Service answers visitor questions and records every signal. The index
// reference is swappable so catalog updates do not interrupt serving.
type Service struct {
	mu        sync.RWMutex
	idx       *index.Index
	store     *analytics.Store
	responder Responder
	events    *Broadcaster
	opts      Options
	logger    *zap.Logger
}

// NewService creates a guide service. The index and responder may both be
// nil, which puts the guide in degraded mode: queries are still logged,
// but search returns nothing and answers come from templates.
func NewService(idx *index.Index, store *analytics.Store, responder Responder, opts Options, logger *zap.Logger) *Service {
	if opts.TopK <= 0 {
		opts.TopK = 3
	}
	return &Service{
		idx:       idx,
		store:     store,
		responder: responder,
		events:    NewBroadcaster(),
		opts:      opts,
		logger:    logger,
	}
}

// Events returns the live event broadcaster for dashboard subscribers
func (s *Service) Events() *Broadcaster {
	return s.events
}

// Store exposes the analytics store for read-side consumers
func (s *Service) Store() *analytics.Store {
	return s.store
}

// SwapIndex atomically replaces the search index after a catalog rebuild
func (s *Service) SwapIndex(idx *index.Index) {
	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()
}

func (s *Service) currentIndex() *index.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx
}

// ProcessQuery answers one visitor question end to end: semantic search,
// answer generation, and the full analytics trail (session, query log,
// one interaction per candidate).
func (s *Service) ProcessQuery(text string, meta SessionMetadata) (*QueryResult, error) {
	if text == "" {
		return nil, fmt.Errorf("query text is empty")
	}

	started := time.Now()
	queryID := uuid.New().String()
	visitorID := VisitorID(meta.IP)

	sessionID, err := s.ensureSession(meta, visitorID)
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	if idx := s.currentIndex(); idx != nil {
		results, err = idx.Search(text, s.opts.TopK, s.opts.SimilarityThreshold)
		if err != nil {
			// Fail closed: a broken embedding backend must not degrade
			// into silently empty answers
			return nil, fmt.Errorf("search failed: %w", err)
		}
	}

	answer, aiGenerated := s.buildAnswer(text, results)
	responseTime := time.Since(started).Seconds()

	language := meta.Language
	if language == "" {
		language = "en"
	}

	queryLog := &models.QueryLog{
		QueryID:       queryID,
		QueryText:     text,
		Timestamp:     float64(started.UnixNano()) / 1e9,
		SessionID:     sessionID,
		VisitorID:     visitorID,
		ResponseTime:  responseTime,
		ArtworksFound: len(results),
		AIGenerated:   aiGenerated,
		Language:      language,
		DeviceType:    meta.DeviceType,
		Location:      meta.Location,
	}
	if err := s.store.LogQuery(queryLog); err != nil {
		return nil, fmt.Errorf("failed to log query: %w", err)
	}

	for i, r := range results {
		interaction := &models.ArtworkInteraction{
			InteractionID:   fmt.Sprintf("%s_%d", queryID, i),
			QueryID:         queryID,
			ArtworkID:       r.Artwork.ID,
			ArtworkTitle:    r.Artwork.Title,
			ArtworkArtist:   r.Artwork.Artist,
			SimilarityScore: r.SimilarityScore,
		}
		if err := s.store.LogInteraction(interaction); err != nil {
			return nil, fmt.Errorf("failed to log interaction: %w", err)
		}
	}

	s.events.Publish(EventNewQuery, queryLog)
	s.logger.Info("query processed",
		zap.String("query_id", queryID),
		zap.Int("artworks_found", len(results)),
		zap.Bool("ai_generated", aiGenerated),
		zap.Float64("response_time", responseTime))

	return &QueryResult{
		QueryID:      queryID,
		Answer:       answer,
		Results:      results,
		ResponseTime: responseTime,
		AIGenerated:  aiGenerated,
		SessionID:    sessionID,
	}, nil
}

// RecordClick marks an artwork as clicked for a query and publishes the
// click to live subscribers
func (s *Service) RecordClick(queryID string, artworkID int, duration float64) error {
	if err := s.store.RecordClick(queryID, artworkID, duration); err != nil {
		return err
	}

	s.events.Publish(EventClick, map[string]interface{}{
		"query_id":   queryID,
		"artwork_id": artworkID,
		"duration":   duration,
	})
	return nil
}

// RecordFeedback stores a visitor rating for a query's results
func (s *Service) RecordFeedback(queryID string, score int, comment string) (string, error) {
	feedbackID, err := s.store.RecordFeedback(queryID, score, comment)
	if err != nil {
		return "", err
	}

	s.events.Publish(EventFeedback, map[string]interface{}{
		"feedback_id": feedbackID,
		"query_id":    queryID,
		"score":       score,
	})
	return feedbackID, nil
}

// ensureSession resolves or creates the visitor session for a request
func (s *Service) ensureSession(meta SessionMetadata, visitorID string) (string, error) {
	sessionID := meta.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	exists, err := s.store.SessionExists(sessionID)
	if err != nil {
		return "", err
	}
	if !exists {
		err = s.store.StartSession(&models.VisitorSession{
			SessionID:  sessionID,
			VisitorID:  visitorID,
			StartTime:  float64(time.Now().UnixNano()) / 1e9,
			DeviceType: meta.DeviceType,
			Location:   meta.Location,
		})
		if err != nil {
			return "", fmt.Errorf("failed to start session: %w", err)
		}
	}
	return sessionID, nil
}

func (s *Service) buildAnswer(query string, results []models.SearchResult) (string, bool) {
	if len(results) == 0 {
		return noMatchAnswer, false
	}
	if s.responder == nil {
		return templateAnswer(results), false
	}

	artworks := make([]models.Artwork, 0, len(results))
	for _, r := range results {
		artworks = append(artworks, r.Artwork)
	}

	answer, err := s.responder.GenerateGuideResponse(query, artworks)
	if err != nil {
		s.logger.Warn("answer generation failed, using template", zap.Error(err))
		return templateAnswer(results), false
	}
	return answer, true
}
