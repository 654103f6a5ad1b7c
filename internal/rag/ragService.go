package rag

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/internal/metrics"
	"github.com/akolanti/RagAPI/internal/rag/chunker"
	"github.com/akolanti/RagAPI/internal/rag/ingest"
	"github.com/akolanti/RagAPI/internal/rag/llm"
	"github.com/akolanti/RagAPI/internal/rag/vectorDB"
	"github.com/akolanti/RagAPI/pkg/logger_i"
)

// Service is the public contract for the pipeline. Handlers and the CLI talk
// to this interface, never to the stores or providers behind it.
type Service interface {
	IngestDocuments(ctx context.Context, files []docModel.UploadedFile, chunkSize, chunkOverlap int) (docModel.IngestSummary, error)
	Search(ctx context.Context, query string, limit int) ([]docModel.SearchResult, error)
	Ask(ctx context.Context, question string, model string) (docModel.Answer, error)
	CollectionStats(ctx context.Context) (docModel.CollectionStats, error)
	ListDocuments(ctx context.Context) ([]docModel.DocumentInfo, error)
	ClearDocuments(ctx context.Context) error
	ListModels(ctx context.Context) ([]string, error)
	PullModel(ctx context.Context, model string) error
}

type service struct {
	vectorDB    vectorDB.Store
	answerCache vectorDB.AnswerCache
	llmProvider llm.Provider
	registry    docModel.DocumentRegistry
	tok         chunker.Tokenizer
	logger      *logger_i.Logger
}

// NewService wires the pipeline together. answerCache may be nil to disable
// semantic caching, registry may be nil to disable document listing.
func NewService(store vectorDB.Store, cache vectorDB.AnswerCache, provider llm.Provider, registry docModel.DocumentRegistry) Service {
	logger := logger_i.NewLogger("rag")

	tok, err := chunker.DefaultTokenizer()
	if err != nil {
		logger.Warn("Tokenizer unavailable, chunking will size by characters", "error", err)
		tok = nil
	}
	return &service{
		vectorDB:    store,
		answerCache: cache,
		llmProvider: provider,
		registry:    registry,
		tok:         tok,
		logger:      logger,
	}
}

// IngestDocuments runs extract, chunk and upsert for a batch of uploads.
// Zero chunking values select the configured defaults.
func (s *service) IngestDocuments(ctx context.Context, files []docModel.UploadedFile, chunkSize, chunkOverlap int) (docModel.IngestSummary, error) {
	log := s.logger.ForTrace(ctx)
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_ingestion", time.Since(start)) }()

	if chunkSize == 0 {
		chunkSize = config.DefaultChunkSize
	}
	if chunkOverlap == 0 {
		chunkOverlap = config.DefaultChunkOverlap
	}
	ch, err := chunker.NewWithTokenizer(chunkSize, chunkOverlap, s.tok)
	if err != nil {
		return docModel.IngestSummary{}, fmt.Errorf("invalid chunking parameters: %w", err)
	}

	chunks, reports := ingest.BuildChunks(files, ch)
	summary := docModel.IngestSummary{Reports: reports}
	if len(chunks) == 0 {
		log.Warn("No chunks produced from upload", "files", len(files))
		return summary, nil
	}

	upserted, err := s.executeUpsertStep(ctx, chunks)
	if err != nil {
		return summary, err
	}
	summary.TotalChunks = upserted

	s.recordDocuments(ctx, reports)
	s.invalidateAnswerCache(ctx)

	log.Info("Ingest complete", "files", len(files), "chunks", upserted)
	return summary, nil
}

// Search embeds the query and returns the closest chunks, nearest first.
func (s *service) Search(ctx context.Context, query string, limit int) ([]docModel.SearchResult, error) {
	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}
	if limit > config.MaxSearchLimit {
		limit = config.MaxSearchLimit
	}
	return s.executeVectorSearchStep(ctx, query, limit)
}

// Ask answers a question against the knowledge base. When retrieval comes
// back empty the canned answer is returned without calling the model.
func (s *service) Ask(ctx context.Context, question string, model string) (docModel.Answer, error) {
	log := s.logger.ForTrace(ctx)
	answer := docModel.Answer{Question: question}

	if cached, found := s.executeCacheCheckStep(ctx, question); found {
		answer.Answer = cached
		answer.Cached = true
		return answer, nil
	}

	matches, err := s.executeVectorSearchStep(ctx, question, config.DefaultSearchLimit)
	if err != nil {
		return answer, err
	}
	if len(matches) == 0 {
		log.Info("No matches for question, skipping generation")
		answer.Answer = config.NoMatchesAnswer
		answer.NoMatches = true
		return answer, nil
	}
	answer.Sources = matches

	generated, err := s.executeLLMStep(ctx, question, matches, model)
	if err != nil {
		return answer, err
	}
	answer.Answer = generated

	s.saveAnswerToCache(ctx, question, generated)
	return answer, nil
}

func (s *service) CollectionStats(ctx context.Context) (docModel.CollectionStats, error) {
	count, err := s.vectorDB.Count(ctx)
	if err != nil {
		return docModel.CollectionStats{}, err
	}
	return docModel.CollectionStats{
		DocumentCount:  count,
		CollectionName: config.DocumentCollection,
	}, nil
}

func (s *service) ListDocuments(ctx context.Context) ([]docModel.DocumentInfo, error) {
	if s.registry == nil {
		return nil, nil
	}
	return s.registry.ListDocuments(ctx)
}

// ClearDocuments wipes the vector collection, the registry and the answer
// cache in one stroke.
func (s *service) ClearDocuments(ctx context.Context) error {
	log := s.logger.ForTrace(ctx)

	if err := s.vectorDB.Clear(ctx); err != nil {
		return err
	}
	if s.registry != nil {
		if err := s.registry.Clear(ctx); err != nil {
			log.Error("Failed clearing document registry", "error", err)
		}
	}
	s.invalidateAnswerCache(ctx)
	log.Info("Knowledge base cleared")
	return nil
}

func (s *service) ListModels(ctx context.Context) ([]string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("model_list", time.Since(start)) }()
	return s.llmProvider.ListModels(ctx)
}

func (s *service) PullModel(ctx context.Context, model string) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("model_pull", time.Since(start)) }()
	return s.llmProvider.PullModel(ctx, model)
}
