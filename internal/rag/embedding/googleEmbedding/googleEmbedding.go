package googleEmbedding

import (
	"context"
	"sync"
	"time"

	"github.com/akolanti/RagAPI/internal/rag/embedding"
	"github.com/akolanti/RagAPI/pkg/logger_i"
	"google.golang.org/genai"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *client

type client struct {
	genAi     *genai.Client
	model     string
	dimension int32
}

func newGoogleEmbedder(ctx context.Context, modelName string, apikey string, dimension int32) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Google embedding client", "error", err)
		return
	}
	embeddingClient = &client{genAi: c, model: modelName, dimension: dimension}
	logger.Info("Google embedding client created", "model", modelName)
	go closeClient(ctx, embeddingClient)
}

func closeClient(ctx context.Context, embeddingClient *client) {
	<-ctx.Done()
	logger.Info("Closing Google embedding client")
	embeddingClient.genAi = nil
	embeddingClient.model = ""
}

func GetGoogleEmbeddingClient(ctx context.Context, modelName string, apikey string, dimension int) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("google_embedding")
		newGoogleEmbedder(ctx, modelName, apikey, int32(dimension))
	})

	//if init still fails
	if embeddingClient == nil {
		return nil
	}
	return embeddingClient
}

func (c *client) Dimension() int {
	return int(c.dimension)
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	result, err := c.genAi.Models.EmbedContent(ctx, c.model, genai.Text(query),
		&genai.EmbedContentConfig{OutputDimensionality: &c.dimension, TaskType: "RETRIEVAL_QUERY"})
	if err != nil {
		logger.Error("Error getting query embedding from Google", "error", err)
		return nil, err
	}
	return result.Embeddings[0].Values, nil
}

func (c *client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	res, err := c.doCall(ctx, getContent(chunks))
	if err != nil && isRateLimited(err) {
		logger.Warn("Rate limit hit, retrying once", "error", err)
		time.Sleep(5 * time.Second)
		res, err = c.doCall(ctx, getContent(chunks))
	}
	if err != nil {
		logger.Error("Error getting batch embeddings from Google", "error", err)
		return nil, err
	}

	results := make([][]float32, 0, len(res.Embeddings))
	for _, r := range res.Embeddings {
		results = append(results, r.Values)
	}
	return results, nil
}

func (c *client) doCall(ctx context.Context, content []*genai.Content) (*genai.EmbedContentResponse, error) {
	return c.genAi.Models.EmbedContent(ctx, c.model, content,
		&genai.EmbedContentConfig{OutputDimensionality: &c.dimension, TaskType: "RETRIEVAL_DOCUMENT"})
}
