package llm

import (
	"context"
	"strings"
	"sync"
)

// Mock is a scripted Client for tests. Each call pops the next entry
// from Responses; when the script runs out, a canned echo of the user
// prompt is returned. Requests are recorded for assertions.
type Mock struct {
	mu        sync.Mutex
	Responses []MockResponse
	Requests  []Request
}

// MockResponse is one scripted reply.
type MockResponse struct {
	Text         string
	InputTokens  int
	OutputTokens int
	Err          error
}

func (m *Mock) Stream(ctx context.Context, req Request, onDelta func(string)) (*Result, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	var resp MockResponse
	if len(m.Responses) > 0 {
		resp = m.Responses[0]
		m.Responses = m.Responses[1:]
	} else {
		resp = MockResponse{
			Text:         "réponse simulée pour : " + firstLine(req.User),
			InputTokens:  100,
			OutputTokens: 50,
		}
	}
	m.mu.Unlock()

	if resp.Err != nil {
		return nil, resp.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Deliver the text in two fragments so callers exercise streaming.
	if onDelta != nil && resp.Text != "" {
		mid := len(resp.Text) / 2
		onDelta(resp.Text[:mid])
		onDelta(resp.Text[mid:])
	}

	return &Result{
		Text:         resp.Text,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
