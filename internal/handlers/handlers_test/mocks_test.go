package handlers_test

import (
	"context"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
)

// MockRagService lets each test pin down just the calls it cares about.
type MockRagService struct {
	OnIngestDocuments func(ctx context.Context, files []docModel.UploadedFile, chunkSize, chunkOverlap int) (docModel.IngestSummary, error)
	OnSearch          func(ctx context.Context, query string, limit int) ([]docModel.SearchResult, error)
	OnAsk             func(ctx context.Context, question string, model string) (docModel.Answer, error)
	OnCollectionStats func(ctx context.Context) (docModel.CollectionStats, error)
	OnListDocuments   func(ctx context.Context) ([]docModel.DocumentInfo, error)
	OnClearDocuments  func(ctx context.Context) error
	OnListModels      func(ctx context.Context) ([]string, error)
	OnPullModel       func(ctx context.Context, model string) error
}

func (m *MockRagService) IngestDocuments(ctx context.Context, files []docModel.UploadedFile, chunkSize, chunkOverlap int) (docModel.IngestSummary, error) {
	if m.OnIngestDocuments != nil {
		return m.OnIngestDocuments(ctx, files, chunkSize, chunkOverlap)
	}
	return docModel.IngestSummary{}, nil
}

func (m *MockRagService) Search(ctx context.Context, query string, limit int) ([]docModel.SearchResult, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, query, limit)
	}
	return []docModel.SearchResult{{Content: "mocked context"}}, nil
}

func (m *MockRagService) Ask(ctx context.Context, question string, model string) (docModel.Answer, error) {
	if m.OnAsk != nil {
		return m.OnAsk(ctx, question, model)
	}
	return docModel.Answer{Question: question, Answer: "mocked answer"}, nil
}

func (m *MockRagService) CollectionStats(ctx context.Context) (docModel.CollectionStats, error) {
	if m.OnCollectionStats != nil {
		return m.OnCollectionStats(ctx)
	}
	return docModel.CollectionStats{CollectionName: config.DocumentCollection}, nil
}

func (m *MockRagService) ListDocuments(ctx context.Context) ([]docModel.DocumentInfo, error) {
	if m.OnListDocuments != nil {
		return m.OnListDocuments(ctx)
	}
	return nil, nil
}

func (m *MockRagService) ClearDocuments(ctx context.Context) error {
	if m.OnClearDocuments != nil {
		return m.OnClearDocuments(ctx)
	}
	return nil
}

func (m *MockRagService) ListModels(ctx context.Context) ([]string, error) {
	if m.OnListModels != nil {
		return m.OnListModels(ctx)
	}
	return []string{"llama2"}, nil
}

func (m *MockRagService) PullModel(ctx context.Context, model string) error {
	if m.OnPullModel != nil {
		return m.OnPullModel(ctx, model)
	}
	return nil
}
