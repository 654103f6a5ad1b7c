package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings carries everything that is tunable per deployment. Values resolve in
// three layers: compiled defaults, an optional yaml file, then environment
// variables on top.
type Settings struct {
	ListenAddr string `yaml:"listen_addr"`

	Ollama struct {
		URL   string `yaml:"url"`
		Model string `yaml:"model"`
	} `yaml:"ollama"`

	Qdrant struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"qdrant"`

	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`

	Chunking struct {
		Size    int `yaml:"size"`
		Overlap int `yaml:"overlap"`
	} `yaml:"chunking"`

	Embedding struct {
		Model     string `yaml:"model"`
		Dimension int    `yaml:"dimension"`
	} `yaml:"embedding"`

	LLM struct {
		Provider      string `yaml:"provider"` //ollama, gemini or openai
		GeminiAPIKey  string `yaml:"gemini_api_key"`
		OpenAIBaseURL string `yaml:"openai_base_url"`
		OpenAIAPIKey  string `yaml:"openai_api_key"`
	} `yaml:"llm"`

	AnswerCache struct {
		Disabled bool `yaml:"disabled"`
	} `yaml:"answer_cache"`
}

func defaultSettings() *Settings {
	s := &Settings{}
	s.ListenAddr = ServerListenAddr
	s.Ollama.URL = OllamaBaseURL
	s.Ollama.Model = DefaultLLMModel
	s.Qdrant.Host = QdrantHost
	s.Qdrant.Port = QdrantGrpcPort
	s.Redis.Addr = RedisAddr
	s.Chunking.Size = DefaultChunkSize
	s.Chunking.Overlap = DefaultChunkOverlap
	s.Embedding.Model = DefaultEmbeddingModel
	s.Embedding.Dimension = DefaultEmbeddingDim
	s.LLM.Provider = DefaultLLMProvider
	return s
}

// Load builds the effective settings. An empty path skips the yaml layer.
func Load(path string) (*Settings, error) {
	s := defaultSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	}
	s.mergeEnv()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) mergeEnv() {
	s.ListenAddr = envOr("LISTEN_ADDR", s.ListenAddr)
	s.Ollama.URL = envOr("OLLAMA_URL", s.Ollama.URL)
	s.Ollama.Model = envOr("LLM_MODEL", s.Ollama.Model)
	s.Qdrant.Host = envOr("QDRANT_HOST", s.Qdrant.Host)
	s.Qdrant.Port = envInt("QDRANT_PORT", s.Qdrant.Port)
	s.Redis.Addr = envOr("REDIS_ADDR", s.Redis.Addr)
	s.Chunking.Size = envInt("CHUNK_SIZE", s.Chunking.Size)
	s.Chunking.Overlap = envInt("CHUNK_OVERLAP", s.Chunking.Overlap)
	s.Embedding.Model = envOr("EMBEDDING_MODEL", s.Embedding.Model)
	s.Embedding.Dimension = envInt("EMBEDDING_DIM", s.Embedding.Dimension)
	s.LLM.Provider = envOr("LLM_PROVIDER", s.LLM.Provider)
	s.LLM.GeminiAPIKey = envOr("GEMINI_API_KEY", s.LLM.GeminiAPIKey)
	s.LLM.OpenAIBaseURL = envOr("OPENAI_BASE_URL", s.LLM.OpenAIBaseURL)
	s.LLM.OpenAIAPIKey = envOr("OPENAI_API_KEY", s.LLM.OpenAIAPIKey)
	if os.Getenv("ANSWER_CACHE_DISABLED") == "true" {
		s.AnswerCache.Disabled = true
	}
}

func (s *Settings) Validate() error {
	if err := ValidateChunking(s.Chunking.Size, s.Chunking.Overlap); err != nil {
		return err
	}
	switch s.LLM.Provider {
	case "ollama", "gemini", "openai":
	default:
		return fmt.Errorf("unknown llm provider %q", s.LLM.Provider)
	}
	if s.Embedding.Dimension <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", s.Embedding.Dimension)
	}
	return nil
}

// ValidateChunking enforces the documented chunking bounds. The upload handler
// reuses it for per-request overrides.
func ValidateChunking(size, overlap int) error {
	if size < MinChunkSize || size > MaxChunkSize {
		return fmt.Errorf("chunk size %d outside [%d, %d]", size, MinChunkSize, MaxChunkSize)
	}
	if overlap < MinChunkOverlap || overlap > MaxChunkOverlap {
		return fmt.Errorf("chunk overlap %d outside [%d, %d]", overlap, MinChunkOverlap, MaxChunkOverlap)
	}
	if overlap >= size {
		return fmt.Errorf("chunk overlap %d must be smaller than chunk size %d", overlap, size)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
