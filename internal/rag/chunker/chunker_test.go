package chunker

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// runeTokenizer maps every rune to one token, so token windows and character
// positions line up exactly and expectations can be computed by hand.
type runeTokenizer struct{}

func (runeTokenizer) Encode(text string) ([]int, error) {
	runes := []rune(text)
	tokens := make([]int, len(runes))
	for i, r := range runes {
		tokens[i] = int(r)
	}
	return tokens, nil
}

func (runeTokenizer) Decode(tokens []int) (string, error) {
	runes := make([]rune, len(tokens))
	for i, t := range tokens {
		runes[i] = rune(t)
	}
	return string(runes), nil
}

type failingTokenizer struct{}

func (failingTokenizer) Encode(string) ([]int, error) {
	return nil, errors.New("encoder offline")
}

func (failingTokenizer) Decode([]int) (string, error) {
	return "", errors.New("encoder offline")
}

func mustChunker(t *testing.T, size, overlap int, tok Tokenizer) *Chunker {
	t.Helper()
	c, err := NewWithTokenizer(size, overlap, tok)
	if err != nil {
		t.Fatalf("NewWithTokenizer(%d, %d): %v", size, overlap, err)
	}
	return c
}

func TestNewWithTokenizer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{"defaults", 1000, 200, false},
		{"zero overlap", 10, 0, false},
		{"zero size", 0, 0, true},
		{"negative overlap", 10, -1, true},
		{"overlap equals size", 10, 10, true},
		{"overlap above size", 10, 11, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithTokenizer(tt.size, tt.overlap, runeTokenizer{})
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestSplit_RoundTripSingleChunk(t *testing.T) {
	// "hello world" with the default parameters must come back untouched as
	// one chunk, with and without a tokenizer.
	for _, tok := range []Tokenizer{runeTokenizer{}, nil} {
		c := mustChunker(t, 1000, 200, tok)
		got := c.Split("hello world")
		if len(got) != 1 || got[0] != "hello world" {
			t.Errorf("tokenizer=%v: got %q, want exactly [\"hello world\"]", tok, got)
		}
	}
}

func TestSplit_SentenceSnap(t *testing.T) {
	text := "Alpha beta gamma delta end. Second sentence runs much longer than the first one does."
	c := mustChunker(t, 40, 5, runeTokenizer{})

	got := c.Split(text)
	want := []string{
		"Alpha beta gamma delta end.",
		"end.",
		"Second sentence runs much longer than t",
		"han the first one does.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !strings.HasSuffix(got[0], ".") {
		t.Errorf("first chunk should end right after a sentence boundary, got %q", got[0])
	}
	if strings.Contains(got[0], "Second") {
		t.Errorf("first chunk leaked into the next sentence: %q", got[0])
	}
}

func TestSplit_ForcedProgressTerminates(t *testing.T) {
	// Snapping shrinks the first window to 2 tokens while the overlap is 2,
	// which would rewind to the previous start; the guard must push forward.
	c := mustChunker(t, 3, 2, runeTokenizer{})
	got := c.Split("a.bbbb")
	want := []string{"a.", "bbb", "bbb", "bb", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplit_AlwaysReturnsTrimmedNonEmptyChunks(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		size    int
		overlap int
	}{
		{"short text", "hello world", 1000, 200},
		{"only dots", "......", 3, 1},
		{"long repeated", strings.Repeat("lorem ipsum dolor sit amet. ", 300), 50, 10},
		{"unicode", strings.Repeat("héllo wörld. ", 200), 20, 5},
		{"no sentence boundaries", strings.Repeat("x", 5000), 100, 50},
		{"zero overlap", strings.Repeat("abc def. ", 100), 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tok := range []Tokenizer{runeTokenizer{}, nil} {
				c := mustChunker(t, tt.size, tt.overlap, tok)
				chunks := c.Split(tt.text)
				if len(chunks) == 0 {
					t.Fatal("expected at least one chunk for non-empty input")
				}
				for i, chunk := range chunks {
					if strings.TrimSpace(chunk) == "" {
						t.Errorf("chunk %d is empty after trimming", i)
					}
					if chunk != strings.TrimSpace(chunk) {
						t.Errorf("chunk %d is not trimmed: %q", i, chunk)
					}
				}
			}
		})
	}
}

func TestSplit_WhitespaceOnlyYieldsNothing(t *testing.T) {
	c := mustChunker(t, 10, 2, runeTokenizer{})
	if got := c.Split("   \n\t  "); len(got) != 0 {
		t.Errorf("whitespace input should produce no chunks, got %q", got)
	}
}

func TestSplit_FallsBackWhenTokenizerFails(t *testing.T) {
	c := mustChunker(t, 1000, 200, failingTokenizer{})
	got := c.Split("hello world")
	if len(got) != 1 || got[0] != "hello world" {
		t.Fatalf("fallback should still chunk the text, got %q", got)
	}

	long := strings.Repeat("ab ", 2000)
	c = mustChunker(t, 500, 50, failingTokenizer{})
	chunks := c.Split(long)
	if len(chunks) != 4 {
		t.Errorf("expected 4 character windows, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("chunk %d empty after trim", i)
		}
	}
}

func TestSplit_CharFallbackKeepsRunesIntact(t *testing.T) {
	// Multi-byte runes must not be cut in half by character windows.
	c := mustChunker(t, 500, 50, nil)
	for _, chunk := range c.Split(strings.Repeat("héllo wörld ", 600)) {
		if !strings.Contains(chunk, "héllo") && !strings.Contains(chunk, "wörld") {
			t.Errorf("chunk lost its unicode content: %q", chunk[:min(len(chunk), 40)])
		}
		if strings.ContainsRune(chunk, '�') {
			t.Errorf("chunk contains a replacement character: %q", chunk[:min(len(chunk), 40)])
		}
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name string
		text string
		tok  Tokenizer
		want TextStats
	}{
		{
			name: "counts with tokenizer",
			text: "hello world.",
			tok:  runeTokenizer{},
			want: TextStats{Characters: 12, Words: 2, Tokens: 12, EstimatedChunks: 1},
		},
		{
			name: "no tokenizer leaves tokens at zero",
			text: "hello world.",
			tok:  nil,
			want: TextStats{Characters: 12, Words: 2, Tokens: 0, EstimatedChunks: 1},
		},
		{
			name: "estimates multiple chunks",
			text: strings.Repeat("a", 2000),
			tok:  runeTokenizer{},
			want: TextStats{Characters: 2000, Words: 1, Tokens: 2000, EstimatedChunks: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustChunker(t, 500, 100, tt.tok)
			if got := c.Stats(tt.text); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
