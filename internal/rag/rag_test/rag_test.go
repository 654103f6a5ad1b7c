package rag_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/internal/rag"
	"github.com/akolanti/RagAPI/internal/rag/llm"
	"github.com/akolanti/RagAPI/internal/rag/vectorDB"
)

func testContext() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestAsk_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(v *MockVectorDB, c *MockAnswerCache, l *MockLLM)
		expectedAnswer string
		expectCached   bool
		expectNoMatch  bool
		expectedErr    error
	}{
		{
			name: "Success_Full_Flow",
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache, l *MockLLM) {
				v.OnQuery = func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
					return []docModel.SearchResult{{Content: "chunk one"}, {Content: "chunk two"}}, nil
				}
				l.OnGenerate = func(ctx context.Context, prompt string, model string) (string, error) {
					return "final answer", nil
				}
			},
			expectedAnswer: "final answer",
		},
		{
			name: "Success_Cache_Hit",
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache, l *MockLLM) {
				c.OnGetCachedAnswer = func(ctx context.Context, question string) (string, bool, error) {
					return "cached answer", true, nil
				}
				v.OnQuery = func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
					t.Error("vector store queried despite cache hit")
					return nil, nil
				}
			},
			expectedAnswer: "cached answer",
			expectCached:   true,
		},
		{
			name: "Empty_Store_Short_Circuits",
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache, l *MockLLM) {
				v.OnQuery = func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
					return nil, nil
				}
				l.OnGenerate = func(ctx context.Context, prompt string, model string) (string, error) {
					t.Error("llm called despite empty retrieval")
					return "", nil
				}
			},
			expectedAnswer: config.NoMatchesAnswer,
			expectNoMatch:  true,
		},
		{
			name: "Cache_Error_Falls_Through",
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache, l *MockLLM) {
				c.OnGetCachedAnswer = func(ctx context.Context, question string) (string, bool, error) {
					return "", false, errors.New("cache down")
				}
				v.OnQuery = func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
					return []docModel.SearchResult{{Content: "chunk"}}, nil
				}
				l.OnGenerate = func(ctx context.Context, prompt string, model string) (string, error) {
					return "generated anyway", nil
				}
			},
			expectedAnswer: "generated anyway",
		},
		{
			name: "Failure_Vector_Search",
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache, l *MockLLM) {
				v.OnQuery = func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
					return nil, fmt.Errorf("%w: db timeout", vectorDB.ErrQueryFailed)
				}
			},
			expectedErr: vectorDB.ErrQueryFailed,
		},
		{
			name: "Failure_LLM_Generation",
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache, l *MockLLM) {
				v.OnQuery = func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
					return []docModel.SearchResult{{Content: "chunk"}}, nil
				}
				l.OnGenerate = func(ctx context.Context, prompt string, model string) (string, error) {
					return "", fmt.Errorf("%w: provider down", llm.ErrGenerationFailed)
				}
			},
			expectedErr: llm.ErrGenerationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mVec := &MockVectorDB{}
			mCache := &MockAnswerCache{}
			mLLM := &MockLLM{}
			tt.setupMocks(mVec, mCache, mLLM)

			s := rag.NewService(mVec, mCache, mLLM, &MockRegistry{})

			result, err := s.Ask(testContext(), "test question", "")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("Ask error = %v, want %v", err, tt.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Ask returned error: %v", err)
			}
			if result.Answer != tt.expectedAnswer {
				t.Errorf("Answer got %q, want %q", result.Answer, tt.expectedAnswer)
			}
			if result.Cached != tt.expectCached {
				t.Errorf("Cached got %v, want %v", result.Cached, tt.expectCached)
			}
			if result.NoMatches != tt.expectNoMatch {
				t.Errorf("NoMatches got %v, want %v", result.NoMatches, tt.expectNoMatch)
			}
			if result.Question != "test question" {
				t.Errorf("Question got %q", result.Question)
			}
		})
	}
}

func TestAsk_PromptAssembly(t *testing.T) {
	var gotPrompt string

	mVec := &MockVectorDB{
		OnQuery: func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
			return []docModel.SearchResult{{Content: "chunk one"}, {Content: "chunk two"}}, nil
		},
	}
	mLLM := &MockLLM{
		OnGenerate: func(ctx context.Context, prompt string, model string) (string, error) {
			gotPrompt = prompt
			return "ok", nil
		},
	}

	s := rag.NewService(mVec, nil, mLLM, nil)
	if _, err := s.Ask(testContext(), "what is go?", ""); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	want := fmt.Sprintf(config.PromptTemplate, "chunk one\n\nchunk two", "what is go?")
	if gotPrompt != want {
		t.Errorf("prompt =\n%q\nwant\n%q", gotPrompt, want)
	}
}

func TestAsk_SavesAnswerToCache(t *testing.T) {
	var savedQuestion, savedAnswer string

	mVec := &MockVectorDB{
		OnQuery: func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
			return []docModel.SearchResult{{Content: "chunk"}}, nil
		},
	}
	mCache := &MockAnswerCache{
		OnSaveAnswer: func(ctx context.Context, question string, answer string) error {
			savedQuestion, savedAnswer = question, answer
			return nil
		},
	}
	mLLM := &MockLLM{
		OnGenerate: func(ctx context.Context, prompt string, model string) (string, error) {
			return "fresh answer", nil
		},
	}

	s := rag.NewService(mVec, mCache, mLLM, nil)
	if _, err := s.Ask(testContext(), "test question", ""); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	if savedQuestion != "test question" || savedAnswer != "fresh answer" {
		t.Errorf("cache save got (%q, %q)", savedQuestion, savedAnswer)
	}
}

func TestIngestDocuments_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		files          []docModel.UploadedFile
		size, overlap  int
		setupMocks     func(v *MockVectorDB, c *MockAnswerCache)
		expectedChunks int
		expectedErr    error
		wantErrSubstr  string
	}{
		{
			name:           "Ingestion_Success",
			files:          []docModel.UploadedFile{{Name: "notes.txt", Data: []byte("some text content")}},
			setupMocks:     func(v *MockVectorDB, c *MockAnswerCache) {},
			expectedChunks: 1,
		},
		{
			name:  "All_Files_Rejected",
			files: []docModel.UploadedFile{{Name: "data.csv", Data: []byte("a,b,c")}},
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache) {
				v.OnUpsertChunks = func(ctx context.Context, chunks []docModel.Chunk) (int, error) {
					t.Error("upsert called with nothing to store")
					return 0, nil
				}
			},
			expectedChunks: 0,
		},
		{
			name:  "Failure_Upsert",
			files: []docModel.UploadedFile{{Name: "notes.txt", Data: []byte("some text content")}},
			setupMocks: func(v *MockVectorDB, c *MockAnswerCache) {
				v.OnUpsertChunks = func(ctx context.Context, chunks []docModel.Chunk) (int, error) {
					return 0, fmt.Errorf("%w: disk full", vectorDB.ErrUpsertFailed)
				}
			},
			expectedErr: vectorDB.ErrUpsertFailed,
		},
		{
			name:          "Invalid_Chunking_Parameters",
			files:         []docModel.UploadedFile{{Name: "notes.txt", Data: []byte("some text content")}},
			size:          100,
			overlap:       200,
			setupMocks:    func(v *MockVectorDB, c *MockAnswerCache) {},
			wantErrSubstr: "invalid chunking parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mVec := &MockVectorDB{}
			mCache := &MockAnswerCache{}
			tt.setupMocks(mVec, mCache)

			s := rag.NewService(mVec, mCache, &MockLLM{}, &MockRegistry{})

			summary, err := s.IngestDocuments(testContext(), tt.files, tt.size, tt.overlap)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("IngestDocuments error = %v, want %v", err, tt.expectedErr)
				}
				return
			}
			if tt.wantErrSubstr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrSubstr) {
					t.Fatalf("IngestDocuments error = %v, want substring %q", err, tt.wantErrSubstr)
				}
				return
			}
			if err != nil {
				t.Fatalf("IngestDocuments returned error: %v", err)
			}
			if summary.TotalChunks != tt.expectedChunks {
				t.Errorf("TotalChunks got %d, want %d", summary.TotalChunks, tt.expectedChunks)
			}
			if len(summary.Reports) != len(tt.files) {
				t.Errorf("got %d reports, want %d", len(summary.Reports), len(tt.files))
			}
		})
	}
}

func TestIngestDocuments_RecordsRegistryAndInvalidatesCache(t *testing.T) {
	cacheCleared := false
	mCache := &MockAnswerCache{
		OnClearAnswers: func(ctx context.Context) error {
			cacheCleared = true
			return nil
		},
	}
	mReg := &MockRegistry{}

	s := rag.NewService(&MockVectorDB{}, mCache, &MockLLM{}, mReg)

	files := []docModel.UploadedFile{
		{Name: "good.txt", Data: []byte("some text content")},
		{Name: "bad.csv", Data: []byte("a,b,c")},
	}
	if _, err := s.IngestDocuments(testContext(), files, 0, 0); err != nil {
		t.Fatalf("IngestDocuments returned error: %v", err)
	}

	if !cacheCleared {
		t.Error("answer cache was not invalidated")
	}
	if len(mReg.Saved) != 1 {
		t.Fatalf("registry recorded %d documents, want 1", len(mReg.Saved))
	}
	saved := mReg.Saved[0]
	if saved.Filename != "good.txt" || saved.FileType != docModel.TXT || saved.ChunkCount != 1 {
		t.Errorf("registry entry = %+v", saved)
	}
	if saved.IngestedAt.IsZero() {
		t.Error("IngestedAt not set")
	}
}

func TestSearch_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero uses default", 0, config.DefaultSearchLimit},
		{"negative uses default", -3, config.DefaultSearchLimit},
		{"in range passes through", 3, 3},
		{"over max clamps", 99, config.MaxSearchLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit int
			mVec := &MockVectorDB{
				OnQuery: func(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			s := rag.NewService(mVec, nil, &MockLLM{}, nil)

			if _, err := s.Search(testContext(), "query", tt.limit); err != nil {
				t.Fatalf("Search returned error: %v", err)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("store received limit %d, want %d", gotLimit, tt.wantLimit)
			}
		})
	}
}

func TestClearDocuments(t *testing.T) {
	t.Run("clears store, registry and cache", func(t *testing.T) {
		storeCleared, cacheCleared := false, false
		mVec := &MockVectorDB{OnClear: func(ctx context.Context) error {
			storeCleared = true
			return nil
		}}
		mCache := &MockAnswerCache{OnClearAnswers: func(ctx context.Context) error {
			cacheCleared = true
			return nil
		}}
		mReg := &MockRegistry{}

		s := rag.NewService(mVec, mCache, &MockLLM{}, mReg)
		if err := s.ClearDocuments(testContext()); err != nil {
			t.Fatalf("ClearDocuments returned error: %v", err)
		}
		if !storeCleared || !cacheCleared || !mReg.Cleared {
			t.Errorf("cleared store=%v cache=%v registry=%v", storeCleared, cacheCleared, mReg.Cleared)
		}
	})

	t.Run("store failure stops the clear", func(t *testing.T) {
		mVec := &MockVectorDB{OnClear: func(ctx context.Context) error {
			return fmt.Errorf("%w: connection refused", vectorDB.ErrUnavailable)
		}}
		mReg := &MockRegistry{}

		s := rag.NewService(mVec, nil, &MockLLM{}, mReg)
		err := s.ClearDocuments(testContext())
		if !errors.Is(err, vectorDB.ErrUnavailable) {
			t.Fatalf("ClearDocuments error = %v, want %v", err, vectorDB.ErrUnavailable)
		}
		if mReg.Cleared {
			t.Error("registry cleared despite store failure")
		}
	})
}

func TestCollectionStats(t *testing.T) {
	mVec := &MockVectorDB{OnCount: func(ctx context.Context) (uint64, error) {
		return 42, nil
	}}

	s := rag.NewService(mVec, nil, &MockLLM{}, nil)
	stats, err := s.CollectionStats(testContext())
	if err != nil {
		t.Fatalf("CollectionStats returned error: %v", err)
	}
	if stats.DocumentCount != 42 {
		t.Errorf("DocumentCount got %d, want 42", stats.DocumentCount)
	}
	if stats.CollectionName != config.DocumentCollection {
		t.Errorf("CollectionName got %q", stats.CollectionName)
	}
}

func TestModelOperations_Delegate(t *testing.T) {
	var pulled string
	mLLM := &MockLLM{
		OnListModels: func(ctx context.Context) ([]string, error) {
			return []string{"llama2", "mistral"}, nil
		},
		OnPullModel: func(ctx context.Context, model string) error {
			pulled = model
			return nil
		},
	}

	s := rag.NewService(&MockVectorDB{}, nil, mLLM, nil)

	models, err := s.ListModels(testContext())
	if err != nil || len(models) != 2 {
		t.Fatalf("ListModels = (%v, %v)", models, err)
	}
	if err := s.PullModel(testContext(), "mistral"); err != nil {
		t.Fatalf("PullModel returned error: %v", err)
	}
	if pulled != "mistral" {
		t.Errorf("pulled %q, want %q", pulled, "mistral")
	}
}
