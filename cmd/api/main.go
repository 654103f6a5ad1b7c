// @title           RAG Document Q&A API
// @version         1.0
// @description     Document ingestion, semantic search and retrieval augmented chat over a local vector store.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/data/store"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/internal/handlers"
	"github.com/akolanti/RagAPI/internal/rag"
	"github.com/akolanti/RagAPI/internal/rag/embedding"
	"github.com/akolanti/RagAPI/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/RagAPI/internal/rag/embedding/ollamaEmbedding"
	"github.com/akolanti/RagAPI/internal/rag/llm"
	"github.com/akolanti/RagAPI/internal/rag/llm/gemini"
	"github.com/akolanti/RagAPI/internal/rag/llm/ollamaLLM"
	"github.com/akolanti/RagAPI/internal/rag/llm/openaiCompat"
	"github.com/akolanti/RagAPI/internal/rag/vectorDB"
	"github.com/akolanti/RagAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/akolanti/RagAPI/internal/server"
	"github.com/akolanti/RagAPI/pkg/logger_i"
	"github.com/akolanti/RagAPI/pkg/retry"
)

var (
	listenAddr string
	configPath string
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//.env is optional, real environment variables win either way
	_ = godotenv.Load()

	//config
	flag.StringVar(&configPath, "config", "", "path to a yaml settings file")
	flag.StringVar(&listenAddr, "listen-addr", "", "server listen address, overrides the settings file")
	flag.Parse()

	settings, err := config.Load(configPath)
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		return
	}
	if listenAddr == "" {
		listenAddr = settings.ListenAddr
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	embedder := pickEmbedder(serviceContext, settings)
	llmProvider := pickProvider(serviceContext, settings)
	if embedder == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "EmbeddingService", embedder != nil, "LLMProvider", llmProvider != nil)
		return
	}

	//ollama accepts connections before the model runner is up, so probe it
	if settings.LLM.Provider == "ollama" {
		err := retry.Do(serviceContext, config.ConnectMaxAttempts, config.ConnectRetryDelay, func() error {
			_, err := llmProvider.ListModels(serviceContext)
			if err != nil {
				logger.Warn("Ollama not ready, retrying", "error", err)
			}
			return err
		})
		if err != nil {
			logger.Error("Ollama never became ready. Shutting down.", "error", err)
			return
		}
	}

	vectorStore := qdrantDB.GetQdrantStore(serviceContext, settings.Qdrant.Host, settings.Qdrant.Port, embedder)
	if vectorStore == nil {
		logger.Error("Vector store failed to initialize. Shutting down.")
		return
	}

	var answerCache vectorDB.AnswerCache
	if settings.AnswerCache.Disabled {
		logger.Info("Answer cache is disabled")
	} else {
		answerCache = vectorStore
	}

	ragService := rag.NewService(vectorStore, answerCache, llmProvider, pickRegistry(serviceContext, settings, logger))

	handlers.InitRagHandler(ragService, store.InitInMemorySessionStore(), settings.Chunking.Size, settings.Chunking.Overlap)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func pickEmbedder(ctx context.Context, settings *config.Settings) embedding.Embedder {
	if settings.LLM.Provider == "gemini" {
		return googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, settings.LLM.GeminiAPIKey, settings.Embedding.Dimension)
	}
	return ollamaEmbedding.GetOllamaEmbedder(settings.Ollama.URL, settings.Embedding.Model, settings.Embedding.Dimension)
}

func pickProvider(ctx context.Context, settings *config.Settings) llm.Provider {
	switch settings.LLM.Provider {
	case "gemini":
		return gemini.GetGeminiClient(ctx, config.GeminiModelName, settings.LLM.GeminiAPIKey)
	case "openai":
		return openaiCompat.GetOpenAICompatClient(settings.LLM.OpenAIBaseURL, settings.LLM.OpenAIAPIKey, settings.Ollama.Model)
	default:
		return ollamaLLM.GetOllamaClient(settings.Ollama.URL, settings.Ollama.Model)
	}
}

func pickRegistry(ctx context.Context, settings *config.Settings, logger *logger_i.Logger) docModel.DocumentRegistry {
	registry := store.GetRedisDocumentRegistry(ctx, settings.Redis.Addr)
	if registry != nil {
		return registry
	}

	logger.Error("Redis registry is offline")
	if config.FALLBACK_REDIS_TO_INTERNALSTORE {
		logger.Info("Falling back to the in-memory document registry")
		return store.InitInMemoryDocumentRegistry()
	}
	return nil
}
