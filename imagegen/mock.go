package imagegen

import (
	"context"
	"sync"
)

// Mock is a scripted Client for tests. Each call pops the next entry
// from Results; an exhausted script returns a tiny placeholder payload.
type Mock struct {
	mu       sync.Mutex
	Results  []MockResult
	Requests []Request
}

// MockResult is one scripted generation outcome.
type MockResult struct {
	Data          []byte
	RevisedPrompt string
	Err           error
}

func (m *Mock) Generate(ctx context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	var r MockResult
	if len(m.Results) > 0 {
		r = m.Results[0]
		m.Results = m.Results[1:]
	} else {
		r = MockResult{Data: []byte("png"), RevisedPrompt: req.Prompt}
	}
	m.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Result{Data: r.Data, RevisedPrompt: r.RevisedPrompt}, nil
}
