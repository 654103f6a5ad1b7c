package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/internal/metrics"
	"github.com/akolanti/RagAPI/internal/rag/embedding"
	"github.com/akolanti/RagAPI/internal/rag/vectorDB"
	"github.com/akolanti/RagAPI/pkg/logger_i"
	"github.com/akolanti/RagAPI/pkg/retry"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var qdrantInstance *ClientHolder
var once sync.Once

type ClientHolder struct {
	QObj     *qdrant.Client
	embedder embedding.Embedder
}

// GetQdrantStore dials qdrant, waits for it to come up within the connection
// budget, and makes sure both collections exist. Returns nil when the store
// never becomes reachable.
func GetQdrantStore(ctx context.Context, host string, port int, embedder embedding.Embedder) *ClientHolder {
	once.Do(func() {
		logger = logger_i.NewLogger("qdrant")
		res := newClient(ctx, host, port, embedder)
		if res != nil {
			qdrantInstance = res
			go closeQdrant(ctx, res.QObj)
		}
	})
	return qdrantInstance
}

func newClient(ctx context.Context, host string, port int, embedder embedding.Embedder) *ClientHolder {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("Could not instantiate qdrant client", "error", err)
		return nil
	}

	err = retry.Do(ctx, config.ConnectMaxAttempts, config.ConnectRetryDelay, func() error {
		_, err := client.HealthCheck(ctx)
		if err != nil {
			logger.Warn("Qdrant not ready, retrying", "error", err)
		}
		return err
	})
	if err != nil {
		logger.Error("Qdrant never became ready", "error", err)
		return nil
	}

	holder := &ClientHolder{QObj: client, embedder: embedder}
	for _, name := range []string{config.DocumentCollection, config.AnswerCacheCollection} {
		if err := holder.ensureCollection(ctx, name); err != nil {
			logger.Error("Could not create collection", "collectionName", name, "error", err)
			return nil
		}
	}
	return holder
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down qdrant client")
	if err := qi.Close(); err != nil {
		logger.Error("Could not close qdrant client", "error", err)
	}
}

func (db *ClientHolder) ensureCollection(ctx context.Context, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}
	exists, err := db.QObj.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return db.QObj.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(db.embedder.Dimension()),
			Distance: qdrant.Distance_Cosine,
		}),
	})
}

// UpsertChunks embeds and stores chunks in batches. Point ids derive from the
// chunk hash, so re-ingesting the same document overwrites its points instead
// of duplicating them.
func (db *ClientHolder) UpsertChunks(ctx context.Context, chunks []docModel.Chunk) (int, error) {
	loggr := logger.ForTrace(ctx)

	upserted := 0
	for start := 0; start < len(chunks); start += config.UpsertBatchSize {
		end := min(start+config.UpsertBatchSize, len(chunks))
		batch := chunks[start:end]

		contents := make([]string, len(batch))
		for i, chunk := range batch {
			contents[i] = chunk.Content
		}
		vectors, err := db.embedder.BatchEmbedding(ctx, contents)
		if err != nil {
			return upserted, fmt.Errorf("%w: embedding batch: %v", vectorDB.ErrUpsertFailed, err)
		}
		if len(vectors) != len(batch) {
			return upserted, fmt.Errorf("%w: got %d vectors for %d chunks", vectorDB.ErrUpsertFailed, len(vectors), len(batch))
		}

		points := make([]*qdrant.PointStruct, len(batch))
		for i, chunk := range batch {
			hash := chunkHash(chunk)
			points[i] = &qdrant.PointStruct{
				Id:      qdrant.NewID(pointID(hash)),
				Vectors: qdrant.NewVectors(vectors[i]...),
				Payload: qdrant.NewValueMap(map[string]any{
					"content":      chunk.Content,
					"filename":     chunk.Metadata.Filename,
					"file_type":    string(chunk.Metadata.FileType),
					"chunk_index":  chunk.Metadata.ChunkIndex,
					"total_chunks": chunk.Metadata.TotalChunks,
					"chunk_hash":   hash,
				}),
			}
		}

		_, err = db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: config.DocumentCollection,
			Points:         points,
			Wait:           qdrant.PtrOf(true),
		})
		if err != nil {
			loggr.Error("Upsert batch failed", "batchStart", start, "error", err)
			return upserted, fmt.Errorf("%w: %v", vectorDB.ErrUpsertFailed, err)
		}
		upserted += len(batch)
		metrics.AddUpsertedChunks(len(batch))
	}

	loggr.Info("Upserted chunks", "count", upserted)
	return upserted, nil
}

func (db *ClientHolder) Query(ctx context.Context, text string, limit int) ([]docModel.SearchResult, error) {
	loggr := logger.ForTrace(ctx)

	vector, err := db.embedder.GetEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding query: %v", vectorDB.ErrQueryFailed, err)
	}

	hits, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: config.DocumentCollection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		loggr.Error("Error querying qdrant", "error", err)
		return nil, fmt.Errorf("%w: %v", vectorDB.ErrQueryFailed, err)
	}

	results := make([]docModel.SearchResult, 0, len(hits))
	for _, hit := range hits {
		// Qdrant reports cosine similarity; the API speaks in distance.
		distance := 1 - hit.Score
		results = append(results, docModel.SearchResult{
			Content: hit.Payload["content"].GetStringValue(),
			Metadata: docModel.ChunkMetadata{
				Filename:    hit.Payload["filename"].GetStringValue(),
				FileType:    docModel.FileType(hit.Payload["file_type"].GetStringValue()),
				ChunkIndex:  int(hit.Payload["chunk_index"].GetIntegerValue()),
				TotalChunks: int(hit.Payload["total_chunks"].GetIntegerValue()),
			},
			Distance: &distance,
		})
	}
	loggr.Debug("Query returned matches", "count", len(results))
	return results, nil
}

func (db *ClientHolder) Count(ctx context.Context) (uint64, error) {
	count, err := db.QObj.Count(ctx, &qdrant.CountPoints{
		CollectionName: config.DocumentCollection,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", vectorDB.ErrUnavailable, err)
	}
	return count, nil
}

// Clear drops the document collection and recreates it empty.
func (db *ClientHolder) Clear(ctx context.Context) error {
	loggr := logger.ForTrace(ctx)

	if err := db.QObj.DeleteCollection(ctx, config.DocumentCollection); err != nil {
		loggr.Error("Error deleting collection", "collectionName", config.DocumentCollection, "error", err)
		return fmt.Errorf("%w: %v", vectorDB.ErrUnavailable, err)
	}
	if err := db.ensureCollection(ctx, config.DocumentCollection); err != nil {
		return fmt.Errorf("%w: %v", vectorDB.ErrUnavailable, err)
	}
	loggr.Info("Cleared collection", "collectionName", config.DocumentCollection)
	return nil
}
