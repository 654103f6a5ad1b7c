package api

import "time"

type FileReportEntry struct {
	Filename string `json:"filename" example:"report.pdf"`
	FileType string `json:"file_type,omitempty" example:"pdf"`
	Chunks   int    `json:"chunks" example:"12"`
	Tokens   int    `json:"tokens,omitempty" example:"5480"`
	Error    string `json:"error,omitempty" example:"unsupported file type"`
}

type UploadResponse struct {
	Reports     []FileReportEntry `json:"reports"`
	TotalChunks int               `json:"total_chunks" example:"12"`
}

type SourceChunk struct {
	Content     string   `json:"content"`
	Filename    string   `json:"filename" example:"report.pdf"`
	FileType    string   `json:"file_type" example:"pdf"`
	ChunkIndex  int      `json:"chunk_index" example:"0"`
	TotalChunks int      `json:"total_chunks" example:"12"`
	Distance    *float32 `json:"distance,omitempty" example:"0.23"`
}

type SearchResponse struct {
	Query   string        `json:"query" example:"what is the refund policy"`
	Results []SourceChunk `json:"results"`
}

type ChatResponse struct {
	SessionID string        `json:"session_id" example:"6f1c0a52-6af3-4f0f-9e46-4499cb3f08fa"`
	Question  string        `json:"question"`
	Answer    string        `json:"answer"`
	Sources   []SourceChunk `json:"sources,omitempty"`
	Cached    bool          `json:"cached" example:"false"`
	NoMatches bool          `json:"no_matches" example:"false"`
}

type ChatTurnEntry struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content"`
}

type ChatHistoryResponse struct {
	SessionID string          `json:"session_id"`
	Turns     []ChatTurnEntry `json:"turns"`
}

type DocumentEntry struct {
	Filename   string    `json:"filename" example:"report.pdf"`
	FileType   string    `json:"file_type" example:"pdf"`
	ChunkCount int       `json:"chunk_count" example:"12"`
	Tokens     int       `json:"tokens" example:"5480"`
	IngestedAt time.Time `json:"ingested_at"`
}

type DocumentListResponse struct {
	Documents []DocumentEntry `json:"documents"`
}

type StatsResponse struct {
	CollectionName string `json:"collection_name" example:"documents"`
	DocumentCount  uint64 `json:"document_count" example:"128"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

type PullModelResponse struct {
	Model  string `json:"model" example:"mistral"`
	Status string `json:"status" example:"pulled"`
}

type ClearResponse struct {
	Cleared bool `json:"cleared" example:"true"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Bad Request"`
}

type ErrorResponse struct {
	Subject string         `json:"subject,omitempty" example:"notes.csv"`
	Error   *OutgoingError `json:"error,omitempty"`
}

// requests---------------------

type SearchRequest struct {
	Query string `json:"query" validate:"required" `
	Limit int    `json:"limit,omitempty" `
}

type ChatRequest struct {
	Message   string `json:"message" validate:"required" `
	SessionID string `json:"sessionID,omitempty" `
	Model     string `json:"model,omitempty" `
}

type PullModelRequest struct {
	Name string `json:"name" validate:"required"`
}
