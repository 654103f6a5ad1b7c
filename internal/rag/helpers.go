package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/internal/metrics"
)

// buildPrompt assembles the grounding prompt: retrieved chunk contents joined
// by blank lines ahead of the question.
func buildPrompt(question string, matches []docModel.SearchResult) string {
	contents := make([]string, len(matches))
	for i, match := range matches {
		contents[i] = match.Content
	}
	return fmt.Sprintf(config.PromptTemplate, strings.Join(contents, "\n\n"), question)
}

func (s *service) executeUpsertStep(ctx context.Context, chunks []docModel.Chunk) (int, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_upsert", time.Since(start)) }()

	return s.vectorDB.UpsertChunks(ctx, chunks)
}

func (s *service) executeVectorSearchStep(ctx context.Context, query string, limit int) ([]docModel.SearchResult, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	return s.vectorDB.Query(ctx, query, limit)
}

func (s *service) executeCacheCheckStep(ctx context.Context, question string) (string, bool) {
	if s.answerCache == nil {
		return "", false
	}
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	answer, found, err := s.answerCache.GetCachedAnswer(ctx, question)
	if err != nil {
		// A broken cache must never break the question path.
		s.logger.ForTrace(ctx).Error("Cache lookup failed", "error", err)
		return "", false
	}
	return answer, found
}

func (s *service) executeLLMStep(ctx context.Context, question string, matches []docModel.SearchResult, model string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, buildPrompt(question, matches), model)
}

func (s *service) saveAnswerToCache(ctx context.Context, question string, answer string) {
	if s.answerCache == nil {
		return
	}
	if err := s.answerCache.SaveAnswer(ctx, question, answer); err != nil {
		s.logger.ForTrace(ctx).Error("Failed to save answer to cache", "error", err)
	}
}

func (s *service) invalidateAnswerCache(ctx context.Context) {
	if s.answerCache == nil {
		return
	}
	if err := s.answerCache.ClearAnswers(ctx); err != nil {
		s.logger.ForTrace(ctx).Error("Failed to clear answer cache", "error", err)
	}
}

func (s *service) recordDocuments(ctx context.Context, reports []docModel.FileReport) {
	if s.registry == nil {
		return
	}
	log := s.logger.ForTrace(ctx)
	for _, report := range reports {
		if report.Failed() {
			continue
		}
		info := docModel.DocumentInfo{
			Filename:   report.Filename,
			FileType:   report.FileType,
			ChunkCount: report.Chunks,
			Tokens:     report.Tokens,
			IngestedAt: time.Now(),
		}
		if err := s.registry.SaveDocument(ctx, info); err != nil {
			log.Error("Failed to record document", "filename", report.Filename, "error", err)
		}
	}
}
