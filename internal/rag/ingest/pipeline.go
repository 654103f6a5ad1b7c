package ingest

import (
	"github.com/akolanti/RagAPI/internal/domain/docModel"
	"github.com/akolanti/RagAPI/internal/metrics"
	"github.com/akolanti/RagAPI/internal/rag/chunker"
	"github.com/akolanti/RagAPI/pkg/logger_i"
)

// BuildChunks extracts and chunks every uploaded file. A file that fails to
// extract is reported and skipped without affecting the others, so one bad
// upload never sinks the batch.
func BuildChunks(files []docModel.UploadedFile, ch *chunker.Chunker) ([]docModel.Chunk, []docModel.FileReport) {
	logger := logger_i.NewLogger("ingest")

	var all []docModel.Chunk
	reports := make([]docModel.FileReport, 0, len(files))

	for _, file := range files {
		report := docModel.FileReport{Filename: file.Name}

		fileType, err := DetectType(file.Name)
		if err != nil {
			logger.Error("Skipping file", "filename", file.Name, "error", err)
			report.Err = err.Error()
			reports = append(reports, report)
			metrics.CountIngestedDocument(true)
			continue
		}
		report.FileType = fileType

		text, err := extractAs(file.Data, fileType, file.Name)
		if err != nil {
			logger.Error("Skipping file", "filename", file.Name, "error", err)
			report.Err = err.Error()
			reports = append(reports, report)
			metrics.CountIngestedDocument(true)
			continue
		}

		report.Tokens = ch.Stats(text).Tokens
		pieces := ch.Split(text)
		for i, piece := range pieces {
			all = append(all, docModel.Chunk{
				Content: piece,
				Metadata: docModel.ChunkMetadata{
					Filename:    file.Name,
					FileType:    fileType,
					ChunkIndex:  i,
					TotalChunks: len(pieces),
				},
			})
		}
		report.Chunks = len(pieces)
		reports = append(reports, report)
		metrics.CountIngestedDocument(false)
		logger.Info("Prepared document", "filename", file.Name, "chunks", len(pieces), "tokens", report.Tokens)
	}
	return all, reports
}
