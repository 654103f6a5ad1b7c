package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akolanti/RagAPI/internal/adapter"
	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/data/store"
	"github.com/akolanti/RagAPI/internal/rag/llm"
	"github.com/akolanti/RagAPI/internal/rag/vectorDB"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, subject string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(subject, error, httpCode))
}

func validateContext(ctx context.Context) bool {
	log := logRH.ForTrace(ctx)
	if ctx.Err() != nil {
		log.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		log.Warn("context cancelled")
		return false
	default:
		return true

	}
}

// statusFromError maps pipeline sentinels to http codes. Unreachable backends
// are 503, backends that answered but failed are 502.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, vectorDB.ErrUnavailable), errors.Is(err, llm.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, vectorDB.ErrUpsertFailed), errors.Is(err, vectorDB.ErrQueryFailed),
		errors.Is(err, llm.ErrGenerationFailed), errors.Is(err, llm.ErrPullFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// chunkingOverrides resolves the optional chunk_size and chunk_overlap form
// values against the configured defaults. Overriding only one of the two
// validates it against the default of the other.
func chunkingOverrides(r *http.Request) (int, int, string) {
	size := handlerInstance.chunkSize
	overlap := handlerInstance.chunkOverlap

	sizeRaw := r.FormValue(config.ChunkSizeField)
	overlapRaw := r.FormValue(config.ChunkOverlapField)
	if sizeRaw == "" && overlapRaw == "" {
		return size, overlap, ""
	}

	if sizeRaw != "" {
		n, err := strconv.Atoi(sizeRaw)
		if err != nil {
			return 0, 0, "chunk_size must be an integer"
		}
		size = n
	}
	if overlapRaw != "" {
		n, err := strconv.Atoi(overlapRaw)
		if err != nil {
			return 0, 0, "chunk_overlap must be an integer"
		}
		overlap = n
	}

	if err := config.ValidateChunking(size, overlap); err != nil {
		return 0, 0, err.Error()
	}
	return size, overlap, ""
}
