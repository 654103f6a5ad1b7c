package ollamaLLM

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/akolanti/RagAPI/internal/rag/llm"
)

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// ListModels reads the Ollama tags endpoint. It doubles as the readiness
// probe at startup, so failures are reported as ErrUnavailable.
func (c *llmClient) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tags endpoint returned status %d", llm.ErrUnavailable, resp.StatusCode)
	}
	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("%w: decoding tags: %v", llm.ErrUnavailable, err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, model := range tags.Models {
		names = append(names, model.Name)
	}
	return names, nil
}

// PullModel downloads a model into the Ollama registry. Pulls can take
// minutes, so callers set a generous context deadline.
func (c *llmClient) PullModel(ctx context.Context, model string) error {
	log := logger.ForTrace(ctx)

	body, err := json.Marshal(map[string]any{"name": model, "stream": false})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pull", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Info("Pulling model", "model", model)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: %s", llm.ErrPullFailed, model, strings.TrimSpace(string(msg)))
	}
	io.Copy(io.Discard, resp.Body)
	log.Info("Model pulled", "model", model)
	return nil
}
