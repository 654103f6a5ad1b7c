package chunker

import (
	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer abstracts the encoding so callers can share one instance and tests
// can stand in deterministic or failing implementations.
type Tokenizer interface {
	Encode(text string) ([]int, error)
	Decode(tokens []int) (string, error)
}

const encodingName = "cl100k_base"

type tiktokenTokenizer struct {
	enc *tiktoken.Tiktoken
}

// DefaultTokenizer loads the cl100k_base encoding. Loading can fail offline;
// a chunker built with a nil tokenizer splits by characters instead.
func DefaultTokenizer() (Tokenizer, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &tiktokenTokenizer{enc: enc}, nil
}

func (t *tiktokenTokenizer) Encode(text string) ([]int, error) {
	return t.enc.Encode(text, nil, nil), nil
}

func (t *tiktokenTokenizer) Decode(tokens []int) (string, error) {
	return t.enc.Decode(tokens), nil
}
