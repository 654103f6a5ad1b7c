package openaiCompat

import (
	"context"
	"fmt"
	"sync"

	"github.com/akolanti/RagAPI/internal/customHttpClient"
	"github.com/akolanti/RagAPI/internal/rag/llm"
	"github.com/akolanti/RagAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var once sync.Once
var compatClient *llmClient

type llmClient struct {
	client       openai.Client
	defaultModel string
}

// GetOpenAICompatClient talks to any OpenAI compatible endpoint, which
// includes Ollama's /v1 surface and hosted gateways.
func GetOpenAICompatClient(baseURL string, apikey string, defaultModel string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")

		opts := []option.RequestOption{option.WithHTTPClient(customHttpClient.GetPooledClient())}
		if baseURL != "" {
			opts = append(opts, option.WithBaseURL(baseURL))
		}
		if apikey != "" {
			opts = append(opts, option.WithAPIKey(apikey))
		}
		compatClient = &llmClient{client: openai.NewClient(opts...), defaultModel: defaultModel}
		logger.Info("OpenAI compatible client created", "baseURL", baseURL, "model", defaultModel)
	})

	if compatClient == nil {
		return nil
	}
	return compatClient
}

func (c *llmClient) Generate(ctx context.Context, prompt string, model string) (string, error) {
	log := logger.ForTrace(ctx)
	if model == "" {
		model = c.defaultModel
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		log.Error("Error generating answer", "error", err, "model", model)
		return "", fmt.Errorf("%w: %v", llm.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion response", llm.ErrGenerationFailed)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *llmClient) ListModels(ctx context.Context) ([]string, error) {
	page, err := c.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}

	names := make([]string, 0, len(page.Data))
	for _, model := range page.Data {
		names = append(names, model.ID)
	}
	return names, nil
}

func (c *llmClient) PullModel(ctx context.Context, model string) error {
	return fmt.Errorf("%w: provider does not support pulling models", llm.ErrPullFailed)
}
