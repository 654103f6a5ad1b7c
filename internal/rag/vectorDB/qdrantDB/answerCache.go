package qdrantDB

import (
	"context"
	"fmt"
	"time"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/metrics"
	"github.com/akolanti/RagAPI/internal/rag/vectorDB"
	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// The answer cache is its own collection keyed by question embedding. A
// lookup only counts as a hit when the nearest stored question clears the
// similarity cutoff.

func (db *ClientHolder) GetCachedAnswer(ctx context.Context, question string) (string, bool, error) {
	loggr := logger.ForTrace(ctx)

	vector, err := db.embedder.GetEmbedding(ctx, question)
	if err != nil {
		return "", false, fmt.Errorf("%w: embedding question: %v", vectorDB.ErrQueryFailed, err)
	}

	hits, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: config.AnswerCacheCollection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", vectorDB.ErrQueryFailed, err)
	}
	if len(hits) == 0 || hits[0].Score < config.CacheSimilarityCutoff {
		return "", false, nil
	}

	loggr.Info("Answer cache hit", "score", hits[0].Score)
	metrics.CountAnswerCacheHit()
	return hits[0].Payload["answer"].GetStringValue(), true, nil
}

func (db *ClientHolder) SaveAnswer(ctx context.Context, question string, answer string) error {
	loggr := logger.ForTrace(ctx)

	vector, err := db.embedder.GetEmbedding(ctx, question)
	if err != nil {
		return fmt.Errorf("%w: embedding question: %v", vectorDB.ErrUpsertFailed, err)
	}

	// Same question, same id: asking again refreshes the entry in place.
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(question)).String()

	_, err = db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: config.AnswerCacheCollection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(id),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(map[string]any{
					"question":  question,
					"answer":    answer,
					"timestamp": time.Now().Unix(),
				}),
			},
		},
		Wait: qdrant.PtrOf(true),
	})
	if err != nil {
		loggr.Error("Saving answer to cache failed", "error", err)
		return fmt.Errorf("%w: %v", vectorDB.ErrUpsertFailed, err)
	}
	return nil
}

// ClearAnswers drops the cache collection. Ingesting or clearing documents
// changes what answers are right, so both paths call this.
func (db *ClientHolder) ClearAnswers(ctx context.Context) error {
	if err := db.QObj.DeleteCollection(ctx, config.AnswerCacheCollection); err != nil {
		return fmt.Errorf("%w: %v", vectorDB.ErrUnavailable, err)
	}
	return db.ensureCollection(ctx, config.AnswerCacheCollection)
}
