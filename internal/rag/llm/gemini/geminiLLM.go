package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/rag/llm"
	"github.com/akolanti/RagAPI/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	//if init still fails
	if geminiClient == nil {
		return nil
	}
	return geminiClient
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client", "error", err)
		return
	}
	geminiClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Gemini client created", "model", modelName)
	go closeClient(ctx, geminiClient)
}

func closeClient(ctx context.Context, llm *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	llm.client = nil
	llm.modelName = ""
}

func (c *llmClient) Generate(ctx context.Context, prompt string, model string) (string, error) {
	log := logger.ForTrace(ctx)
	if model == "" {
		model = c.modelName
	}

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: config.ModelContext}},
		},
	}
	result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), contentConfig)
	if err != nil {
		log.Error("Error generating answer", "error", err, "model", model)
		return "", fmt.Errorf("%w: %v", llm.ErrGenerationFailed, err)
	}
	return result.Text(), nil
}

// ListModels reports the configured model. Gemini models are managed
// remotely, so there is nothing to enumerate or pull.
func (c *llmClient) ListModels(ctx context.Context) ([]string, error) {
	return []string{c.modelName}, nil
}

func (c *llmClient) PullModel(ctx context.Context, model string) error {
	return fmt.Errorf("%w: gemini models are managed remotely", llm.ErrPullFailed)
}
