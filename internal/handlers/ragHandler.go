package handlers

import (
	"context"
	"sync"

	"github.com/akolanti/RagAPI/internal/api"
	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/chatModel"
	"github.com/akolanti/RagAPI/internal/rag"
	"github.com/akolanti/RagAPI/pkg/logger_i"
)

var (
	handlerInstance *RagHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
)

type RagHandler struct {
	service  rag.Service
	sessions chatModel.SessionStore
	//deployment chunking defaults, form fields override them per request
	chunkSize    int
	chunkOverlap int
}

func InitRagHandler(ragService rag.Service, sessions chatModel.SessionStore, chunkSize, chunkOverlap int) {
	once.Do(func() {
		handlerInstance = &RagHandler{
			service:      ragService,
			sessions:     sessions,
			chunkSize:    chunkSize,
			chunkOverlap: chunkOverlap,
		}

		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting request handler")
	})
}

func ValidateChatRequest(chatReq api.ChatRequest) bool {
	if handlerInstance == nil {
		return false
	}
	return chatReq.Message != ""
}

// recordExchange appends the question and the generated answer to the session.
// A failed append is logged and swallowed, the caller already has the answer.
func recordExchange(ctx context.Context, sessionID string, question string, answer string) {
	turns := []chatModel.ChatTurn{
		{Role: chatModel.RoleUser, Content: question},
		{Role: chatModel.RoleAssistant, Content: answer},
	}
	for _, turn := range turns {
		if err := handlerInstance.sessions.AppendTurn(ctx, sessionID, turn); err != nil {
			logRH.Error("Could not record chat turn", "sessionID", sessionID, "error", err)
			return
		}
	}
}

// TestRagHandler swaps the singleton for tests.
func TestRagHandler(ragService rag.Service, sessions chatModel.SessionStore) {
	handlerInstance = &RagHandler{
		service:      ragService,
		sessions:     sessions,
		chunkSize:    config.DefaultChunkSize,
		chunkOverlap: config.DefaultChunkOverlap,
	}
	logRH = logger_i.NewLogger("RequestHandler")
}
