package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/RagAPI/internal/adapter"
	"github.com/akolanti/RagAPI/internal/adapter/utils"
	"github.com/akolanti/RagAPI/internal/api"
)

// ChatHandler godoc
// @Summary      Ask a question
// @Description  Answers a question from the ingested documents. Without a session ID a new session is started; the returned session_id keeps follow-up questions in the same conversation.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest   true  "Question, optional session ID and optional model override"
// @Success      200      {object}  api.ChatResponse  "Answer with its source chunks"
// @Failure      400      {object}  api.ErrorResponse "Empty message"
// @Failure      404      {object}  api.ErrorResponse "Unknown session ID"
// @Failure      502      {object}  api.ErrorResponse "Retrieval or generation failure"
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, request *http.Request) {
	if validateContext(request.Context()) {

		var requestData api.ChatRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Chat handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || !ValidateChatRequest(requestData) {
			logRH.Warn("Bad Chat Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, requestData.SessionID, "Bad Request")
			return
		}

		ctx := request.Context()
		sessionID := requestData.SessionID
		if sessionID == "" {
			id, err := handlerInstance.sessions.InitSession(ctx)
			if err != nil {
				logRH.Error("Could not start session", "error", err)
				WriteErrorResponse(w, http.StatusInternalServerError, "", "Could not start session")
				return
			}
			sessionID = id
			logRH.Debug(" New Chat request : ", "sessionID:", sessionID)
		} else if !handlerInstance.sessions.ValidateSession(ctx, sessionID) {
			WriteErrorResponse(w, http.StatusNotFound, sessionID, "Session not found")
			return
		}

		answer, err := handlerInstance.service.Ask(ctx, requestData.Message, requestData.Model)
		if err != nil {
			logRH.Error("Ask failed", "error", err)
			WriteErrorResponse(w, statusFromError(err), sessionID, "Could not answer question")
			return
		}

		//a no-matches reply is a hint to upload documents, not part of the conversation
		if !answer.NoMatches {
			recordExchange(ctx, sessionID, requestData.Message, answer.Answer)
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToChatResponse(sessionID, answer))
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetChatHistoryHandler godoc
// @Summary      Get session history
// @Description  Returns every turn of one chat session in order.
// @Tags         Chat
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  api.ChatHistoryResponse
// @Failure      404        {object}  api.ErrorResponse  "Unknown or expired session"
// @Router       /chat/{sessionID} [get]
func GetChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sessionID := utils.GetChiURLParam(r, "sessionID")

		turns, err := handlerInstance.sessions.GetHistory(r.Context(), sessionID)
		if err != nil {
			WriteErrorResponse(w, statusFromError(err), sessionID, "Session not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToChatHistoryResponse(sessionID, turns))
	}
}

// DeleteChatHandler godoc
// @Summary      End a session
// @Description  Drops the session and its history.
// @Tags         Chat
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  api.ClearResponse
// @Failure      404        {object}  api.ErrorResponse  "Unknown or expired session"
// @Router       /chat/{sessionID} [delete]
func DeleteChatHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		sessionID := utils.GetChiURLParam(r, "sessionID")

		if err := handlerInstance.sessions.EndSession(r.Context(), sessionID); err != nil {
			WriteErrorResponse(w, statusFromError(err), sessionID, "Session not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, api.ClearResponse{Cleared: true})
	}
}
