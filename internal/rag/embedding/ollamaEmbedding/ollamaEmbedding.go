package ollamaEmbedding

import (
	"context"
	"sync"

	"github.com/akolanti/RagAPI/internal/customHttpClient"
	"github.com/akolanti/RagAPI/internal/rag/embedding"
	"github.com/akolanti/RagAPI/pkg/logger_i"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *client

type client struct {
	embedder  embeddings.Embedder
	dimension int
}

func newOllamaEmbedder(serverURL string, modelName string, dimension int) {
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(modelName),
		ollama.WithHTTPClient(customHttpClient.GetPooledClient()),
	)
	if err != nil {
		logger.Error("Error creating Ollama embedding client", "error", err)
		return
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		logger.Error("Error wrapping Ollama embedding client", "error", err)
		return
	}
	embeddingClient = &client{embedder: embedder, dimension: dimension}
	logger.Info("Ollama embedding client created", "model", modelName)
}

func GetOllamaEmbedder(serverURL string, modelName string, dimension int) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("ollama_embedding")
		newOllamaEmbedder(serverURL, modelName, dimension)
	})

	//if init still fails
	if embeddingClient == nil {
		return nil
	}
	return embeddingClient
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	return c.embedder.EmbedQuery(ctx, query)
}

func (c *client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	return c.embedder.EmbedDocuments(ctx, chunks)
}

func (c *client) Dimension() int {
	return c.dimension
}
