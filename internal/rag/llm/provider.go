package llm

import (
	"context"
	"errors"
)

// Sentinel errors shared by every provider. Handlers map ErrUnavailable to
// 503 and the rest to 502.
var (
	ErrUnavailable      = errors.New("llm service unavailable")
	ErrGenerationFailed = errors.New("llm generation failed")
	ErrPullFailed       = errors.New("model pull failed")
)

// Provider generates answers and manages the models behind them. An empty
// model argument selects the provider's configured default.
type Provider interface {
	Generate(ctx context.Context, prompt string, model string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
	PullModel(ctx context.Context, model string) error
}
