package docModel

import (
	"context"
	"time"
)

type FileType string

const (
	PDF  FileType = "pdf"
	DOCX FileType = "docx"
	TXT  FileType = "txt"
)

// UploadedFile is one file taken off a multipart request, held in memory for
// the duration of the ingest call.
type UploadedFile struct {
	Name string
	Data []byte
}

// ChunkMetadata travels with every chunk into the vector store payload.
// ChunkIndex values for a filename are contiguous from 0 to TotalChunks-1.
type ChunkMetadata struct {
	Filename    string   `json:"filename"`
	FileType    FileType `json:"file_type"`
	ChunkIndex  int      `json:"chunk_index"`
	TotalChunks int      `json:"total_chunks"`
}

// Chunk is the unit stored and retrieved. Content is non-empty and never
// mutated after the pipeline builds it.
type Chunk struct {
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
}

// SearchResult mirrors a stored chunk plus the distance reported by the vector
// store (smaller is closer). Distance is nil when the store did not report one.
type SearchResult struct {
	Content  string        `json:"content"`
	Metadata ChunkMetadata `json:"metadata"`
	Distance *float32      `json:"distance,omitempty"`
}

// FileReport is the per-file outcome of one ingest batch. A failed file keeps
// the batch going; Err carries what went wrong with this one.
type FileReport struct {
	Filename string   `json:"filename"`
	FileType FileType `json:"file_type,omitempty"`
	Chunks   int      `json:"chunks"`
	Tokens   int      `json:"tokens,omitempty"`
	Err      string   `json:"error,omitempty"`
}

func (r FileReport) Failed() bool {
	return r.Err != ""
}

type IngestSummary struct {
	Reports     []FileReport `json:"reports"`
	TotalChunks int          `json:"total_chunks"`
}

// Answer is the outcome of one retrieval-augmented question. NoMatches means
// retrieval came back empty and no generation was attempted.
type Answer struct {
	Question  string         `json:"question"`
	Answer    string         `json:"answer"`
	Sources   []SearchResult `json:"sources"`
	NoMatches bool           `json:"no_matches"`
	Cached    bool           `json:"cached"`
}

type CollectionStats struct {
	DocumentCount  uint64 `json:"document_count"`
	CollectionName string `json:"collection_name"`
}

// DocumentInfo is registry bookkeeping about an ingested file. The chunks
// themselves live only in the vector store.
type DocumentInfo struct {
	Filename   string    `json:"filename"`
	FileType   FileType  `json:"file_type"`
	ChunkCount int       `json:"chunk_count"`
	Tokens     int       `json:"tokens"`
	IngestedAt time.Time `json:"ingested_at"`
}

type DocumentRegistry interface {
	SaveDocument(ctx context.Context, info DocumentInfo) error
	ListDocuments(ctx context.Context) ([]DocumentInfo, error)
	Clear(ctx context.Context) error
}
