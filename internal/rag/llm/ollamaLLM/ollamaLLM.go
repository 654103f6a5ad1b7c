package ollamaLLM

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/akolanti/RagAPI/internal/customHttpClient"
	"github.com/akolanti/RagAPI/internal/rag/llm"
	"github.com/akolanti/RagAPI/pkg/logger_i"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

var logger *logger_i.Logger
var once sync.Once
var ollamaClient *llmClient

type llmClient struct {
	llm          *ollama.LLM
	baseURL      string
	defaultModel string
	http         *http.Client
}

func newOllamaClient(baseURL string, defaultModel string) {
	client, err := ollama.New(
		ollama.WithServerURL(baseURL),
		ollama.WithModel(defaultModel),
		ollama.WithHTTPClient(customHttpClient.GetPooledClient()),
	)
	if err != nil {
		logger.Error("Error creating Ollama client", "error", err)
		return
	}
	ollamaClient = &llmClient{
		llm:          client,
		baseURL:      strings.TrimRight(baseURL, "/"),
		defaultModel: defaultModel,
		http:         customHttpClient.GetPooledClient(),
	}
	logger.Info("Ollama client created", "model", defaultModel)
}

func GetOllamaClient(baseURL string, defaultModel string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_ollama")
		newOllamaClient(baseURL, defaultModel)
	})

	//if init still fails
	if ollamaClient == nil {
		return nil
	}
	return ollamaClient
}

func (c *llmClient) Generate(ctx context.Context, prompt string, model string) (string, error) {
	log := logger.ForTrace(ctx)

	var opts []llms.CallOption
	if model != "" && model != c.defaultModel {
		opts = append(opts, llms.WithModel(model))
	}
	answer, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, opts...)
	if err != nil {
		log.Error("Error generating answer", "error", err, "model", model)
		return "", fmt.Errorf("%w: %v", llm.ErrGenerationFailed, err)
	}
	return answer, nil
}
