package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/RagAPI/internal/adapter"
	"github.com/akolanti/RagAPI/internal/api"
	"github.com/akolanti/RagAPI/internal/config"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// PostDocumentsHandler godoc
// @Summary      Upload documents for ingestion
// @Description  Receives one or more files via multipart/form-data, extracts their text, chunks it and stores the embeddings. Files that fail are reported per file without failing the batch.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        documents      formData  file    true   "PDF, DOCX or TXT files to ingest"
// @Param        chunk_size     formData  int     false  "Chunk size in tokens (500-2000)"
// @Param        chunk_overlap  formData  int     false  "Chunk overlap in tokens (50-500)"
// @Success      200  {object}  api.UploadResponse  "Per-file ingestion reports"
// @Failure      400  {object}  api.ErrorResponse   "Missing files, oversized upload or bad chunking values"
// @Failure      502  {object}  api.ErrorResponse   "Embedding or vector store failure"
// @Router       /documents [post]
func PostDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
			return
		}

		chunkSize, chunkOverlap, errMessage := chunkingOverrides(r)
		if errMessage != "" {
			WriteErrorResponse(w, http.StatusBadRequest, "", errMessage)
			return
		}

		headers := r.MultipartForm.File[config.UploadField]
		if len(headers) == 0 {
			WriteErrorResponse(w, http.StatusBadRequest, "", "no files in the 'documents' field")
			return
		}

		files := make([]docModel.UploadedFile, 0, len(headers))
		for _, header := range headers {
			part, err := header.Open()
			if err != nil {
				WriteErrorResponse(w, http.StatusBadRequest, header.Filename, "Could not retrieve file")
				return
			}
			data, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				WriteErrorResponse(w, http.StatusBadRequest, header.Filename, "Could not read file")
				return
			}
			files = append(files, docModel.UploadedFile{Name: header.Filename, Data: data})
		}

		summary, err := handlerInstance.service.IngestDocuments(r.Context(), files, chunkSize, chunkOverlap)
		if err != nil {
			logRH.Error("Ingestion failed", "error", err)
			WriteErrorResponse(w, statusFromError(err), "", "Could not ingest documents")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(summary))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// GetDocumentsHandler godoc
// @Summary      List ingested documents
// @Description  Returns registry entries for every document currently in the knowledge base.
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  api.DocumentListResponse
// @Failure      502  {object}  api.ErrorResponse  "Registry failure"
// @Router       /documents [get]
func GetDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		documents, err := handlerInstance.service.ListDocuments(r.Context())
		if err != nil {
			WriteErrorResponse(w, statusFromError(err), "", "Could not list documents")
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToDocumentListResponse(documents))
	}
}

// DeleteDocumentsHandler godoc
// @Summary      Clear the knowledge base
// @Description  Drops every stored chunk, the document registry and the answer cache.
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  api.ClearResponse
// @Failure      503  {object}  api.ErrorResponse  "Vector store unreachable"
// @Router       /documents [delete]
func DeleteDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		if err := handlerInstance.service.ClearDocuments(r.Context()); err != nil {
			logRH.Error("Clear failed", "error", err)
			WriteErrorResponse(w, statusFromError(err), "", "Could not clear documents")
			return
		}
		writeJsonResponse(w, http.StatusOK, api.ClearResponse{Cleared: true})
	}
}

// GetStatsHandler godoc
// @Summary      Collection statistics
// @Description  Reports the collection name and how many chunks it currently holds.
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  api.StatsResponse
// @Failure      503  {object}  api.ErrorResponse  "Vector store unreachable"
// @Router       /documents/stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		stats, err := handlerInstance.service.CollectionStats(r.Context())
		if err != nil {
			WriteErrorResponse(w, statusFromError(err), "", "Could not read collection stats")
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToStatsResponse(stats))
	}
}

// PostSearchHandler godoc
// @Summary      Similarity search
// @Description  Embeds the query and returns the closest stored chunks with their distances.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      api.SearchRequest  true  "Query text and optional result limit"
// @Success      200      {object}  api.SearchResponse
// @Failure      400      {object}  api.ErrorResponse  "Empty query"
// @Failure      502      {object}  api.ErrorResponse  "Embedding or vector store failure"
// @Router       /search [post]
func PostSearchHandler(w http.ResponseWriter, request *http.Request) {
	if validateContext(request.Context()) {

		var requestData api.SearchRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Search handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || requestData.Query == "" {
			logRH.Warn("Bad Search Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		results, err := handlerInstance.service.Search(request.Context(), requestData.Query, requestData.Limit)
		if err != nil {
			logRH.Error("Search failed", "error", err)
			WriteErrorResponse(w, statusFromError(err), "", "Could not search documents")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToSearchResponse(requestData.Query, results))
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}
