// ABOUTME: Shared initialization for CLI commands
// ABOUTME: Wires config, logging, catalog, index, analytics and the guide
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/artlens/gallery-guide/internal/analytics"
	"github.com/artlens/gallery-guide/internal/catalog"
	"github.com/artlens/gallery-guide/internal/config"
	"github.com/artlens/gallery-guide/internal/guide"
	"github.com/artlens/gallery-guide/internal/index"
	"github.com/artlens/gallery-guide/internal/llm"
	"github.com/artlens/gallery-guide/internal/logging"
)

// app bundles everything a command needs, plus a cleanup func
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *analytics.Store
	service *guide.Service
}

// initApp loads configuration and builds the guide service. Without an
// OpenAI key or a catalog file the guide runs degraded: queries are
// answered from templates and still fully logged.
func initApp() (*app, func(), error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level := "info"
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}
	logger, err := logging.New(level, "console")
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	store, err := analytics.NewStore(cfg.DBPath, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening analytics store: %w", err)
	}

	// Enforce the retention window on every startup so long-lived
	// processes and infrequently-run CLIs both stay inside it
	if deleted, err := store.RetentionSweep(cfg.RetentionDays); err != nil {
		logger.Warn("retention sweep failed", zap.Error(err))
	} else if deleted > 0 {
		logger.Info("retention sweep removed expired rows",
			zap.Int64("deleted", deleted),
			zap.Int("retention_days", cfg.RetentionDays))
	}

	artworks, err := catalog.Load(cfg.DataFile)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	if artworks == nil {
		logger.Warn("catalog file missing, running without search",
			zap.String("path", cfg.DataFile))
	}

	var client *llm.OpenAIClient
	if cfg.HasOpenAI() {
		client, err = llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
			APIKey:         cfg.OpenAIKey,
			ChatModel:      cfg.ChatModel,
			EmbeddingModel: cfg.EmbeddingModel,
			Dimensions:     cfg.VectorDimension,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RetryDelay:     cfg.RetryDelay,
		})
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("initializing OpenAI client: %w", err)
		}
	} else {
		logger.Warn("OPENAI_API_KEY not set, semantic search and AI answers disabled")
	}

	var idx *index.Index
	if client != nil && len(artworks) > 0 {
		idx, err = index.Load(artworks, client, index.Options{
			CacheDir:  cfg.CacheDir,
			Dimension: cfg.VectorDimension,
		}, logger)
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("building vector index: %w", err)
		}
	}

	var responder guide.Responder
	if client != nil {
		responder = client
	}

	service := guide.NewService(idx, store, responder, guide.Options{
		TopK:                cfg.TopK,
		SimilarityThreshold: cfg.SimilarityThreshold,
	}, logger)

	cleanup := func() {
		_ = store.Close()
		_ = logger.Sync()
	}
	return &app{cfg: cfg, logger: logger, store: store, service: service}, cleanup, nil
}
