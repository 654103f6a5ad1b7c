package qdrantDB

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/google/uuid"
)

// chunkHash gives a chunk a stable identity. Identical content with identical
// metadata always hashes the same, which is what makes upserts idempotent.
func chunkHash(chunk docModel.Chunk) string {
	contentSum := sha256.Sum256([]byte(chunk.Content))

	// json.Marshal sorts map keys, giving a canonical metadata encoding.
	metaJSON, _ := json.Marshal(map[string]any{
		"chunk_index":  chunk.Metadata.ChunkIndex,
		"file_type":    string(chunk.Metadata.FileType),
		"filename":     chunk.Metadata.Filename,
		"total_chunks": chunk.Metadata.TotalChunks,
	})
	metaSum := sha256.Sum256(metaJSON)

	return hex.EncodeToString(contentSum[:]) + "_" + hex.EncodeToString(metaSum[:])
}

// pointID folds a chunk hash into a UUID because qdrant only accepts UUIDs or
// unsigned integers as point ids.
func pointID(hash string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(hash)).String()
}
