package chatModel

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is the explicit per-conversation context object. Turns are append
// only; everything lives in memory and nothing survives a process restart.
type Session struct {
	ID        string     `json:"id"`
	Turns     []ChatTurn `json:"turns"`
	CreatedAt time.Time  `json:"created_at"`
	LastSeen  time.Time  `json:"last_seen"`
}

type SessionStore interface {
	InitSession(ctx context.Context) (string, error)
	ValidateSession(ctx context.Context, id string) bool
	AppendTurn(ctx context.Context, id string, turn ChatTurn) error
	GetHistory(ctx context.Context, id string) ([]ChatTurn, error)
	EndSession(ctx context.Context, id string) error
}
