package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse indicates the model finished without producing text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Request is one completion call.
type Request struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Result is the completed response with usage accounting.
type Result struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Client streams completions. onDelta is invoked for each text fragment
// as it arrives; pass nil to discard fragments. The full text and token
// counts come back in the Result once the stream ends.
type Client interface {
	Stream(ctx context.Context, req Request, onDelta func(string)) (*Result, error)
}
