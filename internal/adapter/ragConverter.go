package adapter

import (
	"github.com/akolanti/RagAPI/internal/api"
	"github.com/akolanti/RagAPI/internal/domain/chatModel"
	"github.com/akolanti/RagAPI/internal/domain/docModel"
)

func ToUploadResponse(summary docModel.IngestSummary) api.UploadResponse {
	reports := make([]api.FileReportEntry, 0, len(summary.Reports))
	for _, report := range summary.Reports {
		reports = append(reports, api.FileReportEntry{
			Filename: report.Filename,
			FileType: string(report.FileType),
			Chunks:   report.Chunks,
			Tokens:   report.Tokens,
			Error:    report.Err,
		})
	}

	return api.UploadResponse{
		Reports:     reports,
		TotalChunks: summary.TotalChunks,
	}
}

func ToSourceChunks(results []docModel.SearchResult) []api.SourceChunk {
	chunks := make([]api.SourceChunk, 0, len(results))
	for _, result := range results {
		chunks = append(chunks, api.SourceChunk{
			Content:     result.Content,
			Filename:    result.Metadata.Filename,
			FileType:    string(result.Metadata.FileType),
			ChunkIndex:  result.Metadata.ChunkIndex,
			TotalChunks: result.Metadata.TotalChunks,
			Distance:    result.Distance,
		})
	}
	return chunks
}

func ToSearchResponse(query string, results []docModel.SearchResult) api.SearchResponse {
	return api.SearchResponse{
		Query:   query,
		Results: ToSourceChunks(results),
	}
}

func ToChatResponse(sessionID string, answer docModel.Answer) api.ChatResponse {
	return api.ChatResponse{
		SessionID: sessionID,
		Question:  answer.Question,
		Answer:    answer.Answer,
		Sources:   ToSourceChunks(answer.Sources),
		Cached:    answer.Cached,
		NoMatches: answer.NoMatches,
	}
}

func ToChatHistoryResponse(sessionID string, turns []chatModel.ChatTurn) api.ChatHistoryResponse {
	entries := make([]api.ChatTurnEntry, 0, len(turns))
	for _, turn := range turns {
		entries = append(entries, api.ChatTurnEntry{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	return api.ChatHistoryResponse{
		SessionID: sessionID,
		Turns:     entries,
	}
}

func ToDocumentListResponse(documents []docModel.DocumentInfo) api.DocumentListResponse {
	entries := make([]api.DocumentEntry, 0, len(documents))
	for _, doc := range documents {
		entries = append(entries, api.DocumentEntry{
			Filename:   doc.Filename,
			FileType:   string(doc.FileType),
			ChunkCount: doc.ChunkCount,
			Tokens:     doc.Tokens,
			IngestedAt: doc.IngestedAt,
		})
	}
	return api.DocumentListResponse{Documents: entries}
}

func ToStatsResponse(stats docModel.CollectionStats) api.StatsResponse {
	return api.StatsResponse{
		CollectionName: stats.CollectionName,
		DocumentCount:  stats.DocumentCount,
	}
}

func BadRequest(subject string, error string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Subject: subject,
		Error: &api.OutgoingError{
			Code:    code,
			Message: error,
		},
	}
}
