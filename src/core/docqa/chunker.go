package docqa

import (
	"fmt"
	"strings"
)

// SplitText splits text into overlapping windows of whitespace-delimited
// tokens. Consecutive chunks share exactly overlap tokens at the boundary;
// the final chunk may be shorter than size. The output is deterministic for
// identical input and parameters.
//
// Dropping the first overlap tokens of every chunk after the first and
// concatenating the token sequences reproduces the tokenized input.
func SplitText(text string, size, overlap int) ([]Chunk, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap must not be negative, got %d", overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("chunk overlap %d must be smaller than chunk size %d", overlap, size)
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	var chunks []Chunk
	stride := size - overlap
	for start := 0; ; start += stride {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, Chunk{
			Index:   len(chunks),
			Offset:  start,
			Content: strings.Join(tokens[start:end], " "),
		})
		if end == len(tokens) {
			break
		}
	}

	return chunks, nil
}
