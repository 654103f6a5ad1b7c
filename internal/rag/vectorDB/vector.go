package vectorDB

import (
	"context"
	"errors"

	"github.com/akolanti/RagAPI/internal/domain/docModel"
)

// Sentinel errors for the storage stage. ErrUnavailable maps to 503, the
// other two to 502.
var (
	ErrUnavailable  = errors.New("vector store unavailable")
	ErrUpsertFailed = errors.New("vector upsert failed")
	ErrQueryFailed  = errors.New("vector query failed")
)

// Store persists document chunks and answers similarity queries over them.
// Implementations embed text themselves so callers never see raw vectors.
type Store interface {
	UpsertChunks(ctx context.Context, chunks []docModel.Chunk) (int, error)
	Query(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error)
	Count(ctx context.Context) (uint64, error)
	Clear(ctx context.Context) error
}

// AnswerCache keeps generated answers keyed by semantic similarity of the
// question that produced them.
type AnswerCache interface {
	GetCachedAnswer(ctx context.Context, question string) (string, bool, error)
	SaveAnswer(ctx context.Context, question string, answer string) error
	ClearAnswers(ctx context.Context) error
}
