package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/RagAPI/internal/api"
	"github.com/akolanti/RagAPI/internal/config"
)

// GetModelsHandler godoc
// @Summary      List available models
// @Description  Returns the model names the configured LLM provider can serve.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  api.ModelsResponse
// @Failure      503  {object}  api.ErrorResponse  "LLM backend unreachable"
// @Router       /models [get]
func GetModelsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		models, err := handlerInstance.service.ListModels(r.Context())
		if err != nil {
			WriteErrorResponse(w, statusFromError(err), "", "Could not list models")
			return
		}
		writeJsonResponse(w, http.StatusOK, api.ModelsResponse{Models: models})
	}
}

// PullModelHandler godoc
// @Summary      Pull a model
// @Description  Asks the LLM backend to download a model. Blocks until the pull finishes, which can take minutes for large models.
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        request  body      api.PullModelRequest   true  "Model name to pull"
// @Success      200      {object}  api.PullModelResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing model name"
// @Failure      502      {object}  api.ErrorResponse  "Pull rejected by the backend"
// @Router       /models/pull [post]
func PullModelHandler(w http.ResponseWriter, request *http.Request) {
	if validateContext(request.Context()) {

		var requestData api.PullModelRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Pull handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || requestData.Name == "" {
			logRH.Warn("Bad Pull Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, "", "model name is required")
			return
		}

		ctx, cancel := context.WithTimeout(request.Context(), config.ModelPullTimeout)
		defer cancel()
		if err := handlerInstance.service.PullModel(ctx, requestData.Name); err != nil {
			logRH.Error("Model pull failed", "model", requestData.Name, "error", err)
			WriteErrorResponse(w, statusFromError(err), requestData.Name, "Could not pull model")
			return
		}

		writeJsonResponse(w, http.StatusOK, api.PullModelResponse{Model: requestData.Name, Status: "pulled"})
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}
