package rag_test

import (
	"context"

	"github.com/akolanti/RagAPI/internal/domain/docModel"
)

// MockVectorDB implements vectorDB.Store
type MockVectorDB struct {
	// Control fields to simulate different behaviors
	OnUpsertChunks func(ctx context.Context, chunks []docModel.Chunk) (int, error)
	OnQuery        func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error)
	OnCount        func(ctx context.Context) (uint64, error)
	OnClear        func(ctx context.Context) error
}

func (m *MockVectorDB) UpsertChunks(ctx context.Context, chunks []docModel.Chunk) (int, error) {
	if m.OnUpsertChunks != nil {
		return m.OnUpsertChunks(ctx, chunks)
	}
	return len(chunks), nil
}

func (m *MockVectorDB) Query(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
	if m.OnQuery != nil {
		return m.OnQuery(ctx, text, limit)
	}
	return []docModel.SearchResult{{Content: "default context"}}, nil
}

func (m *MockVectorDB) Count(ctx context.Context) (uint64, error) {
	if m.OnCount != nil {
		return m.OnCount(ctx)
	}
	return 0, nil
}

func (m *MockVectorDB) Clear(ctx context.Context) error {
	if m.OnClear != nil {
		return m.OnClear(ctx)
	}
	return nil
}

// MockAnswerCache implements vectorDB.AnswerCache
type MockAnswerCache struct {
	OnGetCachedAnswer func(ctx context.Context, question string) (string, bool, error)
	OnSaveAnswer      func(ctx context.Context, question string, answer string) error
	OnClearAnswers    func(ctx context.Context) error
}

func (m *MockAnswerCache) GetCachedAnswer(ctx context.Context, question string) (string, bool, error) {
	if m.OnGetCachedAnswer != nil {
		return m.OnGetCachedAnswer(ctx, question)
	}
	return "", false, nil
}

func (m *MockAnswerCache) SaveAnswer(ctx context.Context, question string, answer string) error {
	if m.OnSaveAnswer != nil {
		return m.OnSaveAnswer(ctx, question, answer)
	}
	return nil
}

func (m *MockAnswerCache) ClearAnswers(ctx context.Context) error {
	if m.OnClearAnswers != nil {
		return m.OnClearAnswers(ctx)
	}
	return nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate   func(ctx context.Context, prompt string, model string) (string, error)
	OnListModels func(ctx context.Context) ([]string, error)
	OnPullModel  func(ctx context.Context, model string) error
}

func (m *MockLLM) Generate(ctx context.Context, prompt string, model string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt, model)
	}
	return "mocked llm response", nil
}

func (m *MockLLM) ListModels(ctx context.Context) ([]string, error) {
	if m.OnListModels != nil {
		return m.OnListModels(ctx)
	}
	return []string{"llama2"}, nil
}

func (m *MockLLM) PullModel(ctx context.Context, model string) error {
	if m.OnPullModel != nil {
		return m.OnPullModel(ctx, model)
	}
	return nil
}

// MockRegistry implements docModel.DocumentRegistry
type MockRegistry struct {
	Saved   []docModel.DocumentInfo
	Cleared bool

	OnSaveDocument  func(ctx context.Context, info docModel.DocumentInfo) error
	OnListDocuments func(ctx context.Context) ([]docModel.DocumentInfo, error)
	OnClear         func(ctx context.Context) error
}

func (m *MockRegistry) SaveDocument(ctx context.Context, info docModel.DocumentInfo) error {
	if m.OnSaveDocument != nil {
		return m.OnSaveDocument(ctx, info)
	}
	m.Saved = append(m.Saved, info)
	return nil
}

func (m *MockRegistry) ListDocuments(ctx context.Context) ([]docModel.DocumentInfo, error) {
	if m.OnListDocuments != nil {
		return m.OnListDocuments(ctx)
	}
	return m.Saved, nil
}

func (m *MockRegistry) Clear(ctx context.Context) error {
	if m.OnClear != nil {
		return m.OnClear(ctx)
	}
	m.Cleared = true
	m.Saved = nil
	return nil
}
