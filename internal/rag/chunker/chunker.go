package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akolanti/RagAPI/pkg/logger_i"
)

// charsPerToken approximates token length when splitting without a tokenizer.
const charsPerToken = 4

// Chunker splits text into overlapping windows of at most size tokens,
// snapping non-final windows back to the last finished sentence. When no
// tokenizer is available it degrades to character windows using the
// charsPerToken ratio.
type Chunker struct {
	size    int
	overlap int
	tok     Tokenizer
	logger  *logger_i.Logger
}

// New builds a chunker with its own tokenizer. A failed tokenizer load is not
// an error; the chunker then runs in character-fallback mode.
func New(size, overlap int) (*Chunker, error) {
	tok, err := DefaultTokenizer()
	if err != nil {
		logger_i.NewLogger("chunker").Warn("tokenizer unavailable, characters will be used for sizing", "error", err)
		tok = nil
	}
	return NewWithTokenizer(size, overlap, tok)
}

// NewWithTokenizer builds a chunker around an existing tokenizer, which may be
// nil to force character mode.
func NewWithTokenizer(size, overlap int, tok Tokenizer) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap %d must satisfy 0 <= overlap < size (%d)", overlap, size)
	}
	return &Chunker{
		size:    size,
		overlap: overlap,
		tok:     tok,
		logger:  logger_i.NewLogger("chunker"),
	}, nil
}

func (c *Chunker) Size() int {
	return c.size
}

func (c *Chunker) Overlap() int {
	return c.overlap
}

// Split returns the ordered chunks of text. It never fails: any tokenizer
// trouble mid-flight drops the whole text down to the character path, and
// whitespace-only input yields no chunks.
func (c *Chunker) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if c.tok != nil {
		chunks, err := c.splitByTokens(text)
		if err == nil {
			return chunks
		}
		c.logger.Warn("token split failed, falling back to characters", "error", err)
	}
	return c.splitByChars(text)
}

func (c *Chunker) splitByTokens(text string) ([]string, error) {
	tokens, err := c.tok.Encode(text)
	if err != nil {
		return nil, err
	}

	var chunks []string
	start := 0
	for start < len(tokens) {
		end := start + c.size

		if end < len(tokens) {
			window, err := c.tok.Decode(tokens[start:end])
			if err != nil {
				return nil, err
			}
			// Snap a non-final window back to its last finished sentence so
			// chunks do not cut mid-sentence. Re-encode to find the true end
			// position of the shortened text.
			if dot := strings.LastIndex(window, "."); dot >= 0 {
				snapped, err := c.tok.Encode(window[:dot+1])
				if err != nil {
					return nil, err
				}
				end = start + len(snapped)
			}
		}

		chunk, err := c.tok.Decode(tokens[start:min(end, len(tokens))])
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			chunks = append(chunks, trimmed)
		}

		// Overlap the next window with this one. Sentence snapping can shrink
		// end below start+overlap; force the start forward in that case so the
		// loop always terminates.
		next := end - c.overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks, nil
}

func (c *Chunker) splitByChars(text string) []string {
	charSize := c.size * charsPerToken
	charOverlap := c.overlap * charsPerToken
	runes := []rune(text)

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + charSize
		if chunk := strings.TrimSpace(string(runes[start:min(end, len(runes))])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		next := end - charOverlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// TextStats describes text the way the upload report presents it.
type TextStats struct {
	Characters      int `json:"characters"`
	Words           int `json:"words"`
	Tokens          int `json:"tokens"`
	EstimatedChunks int `json:"estimated_chunks"`
}

// Stats counts characters, words and tokens. Token count stays zero when no
// tokenizer is available.
func (c *Chunker) Stats(text string) TextStats {
	stats := TextStats{
		Characters:      utf8.RuneCountInString(text),
		Words:           len(strings.Fields(text)),
		EstimatedChunks: 1,
	}
	if c.tok == nil {
		return stats
	}
	tokens, err := c.tok.Encode(text)
	if err != nil {
		return stats
	}
	stats.Tokens = len(tokens)
	if est := len(tokens) / (c.size - c.overlap); est > 1 {
		stats.EstimatedChunks = est
	}
	return stats
}
