package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, the document registry falls back to an in-memory store

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout = 5 * time.Second
	//generation and model pulls block the response, so the write window has to be generous
	WriteTimeout           = 15 * time.Minute
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//uploads
	MaxUploadBytes    = 32 << 20
	UploadField       = "documents"
	ChunkSizeField    = "chunk_size"
	ChunkOverlapField = "chunk_overlap"

	//chunking bounds, enforced at load and again per upload
	DefaultChunkSize    = 1000
	MinChunkSize        = 500
	MaxChunkSize        = 2000
	DefaultChunkOverlap = 200
	MinChunkOverlap     = 50
	MaxChunkOverlap     = 500

	//search
	DefaultSearchLimit = 5
	MaxSearchLimit     = 10

	//external service handshakes: fixed delay, bounded attempts, then fail fast
	ConnectMaxAttempts = 10
	ConnectRetryDelay  = 5 * time.Second

	//vectorDB
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = "localhost"
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false //set for https
	QdrantPoolSize          = 1     //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout  = 30 * time.Second
	DocumentCollection      = "documents"
	UpsertBatchSize         = 100

	//answer cache (query-embedding keyed)
	AnswerCacheCollection = "answer-cache"
	CacheSimilarityCutoff = 0.95

	//llm
	OllamaBaseURL      = "http://localhost:11434"
	DefaultLLMModel    = "llama2"
	DefaultLLMProvider = "ollama"
	ModelPullTimeout   = 15 * time.Minute

	//embeddings
	DefaultEmbeddingModel = "nomic-embed-text"
	DefaultEmbeddingDim   = 768
	GeminiModelName       = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel  = "gemini-embedding-001"

	PromptTemplate  = "Based on the following context, please answer the question. If the answer cannot be found in the context, please say so.\n\nContext:\n%s\n\nQuestion: %s\n\nAnswer:"
	ModelContext    = "You answer questions using only the supplied document context."
	NoMatchesAnswer = "I don't have any documents in my knowledge base yet. Please upload some documents first."

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisRegistryStore = 0

	RedisRegistryTTL = 24 * time.Hour

	//sessions are memory-only and expire after being idle
	SessionIdleTTL = 30 * time.Minute
)
