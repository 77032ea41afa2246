package agent

import (
	"context"

	"clubgraph/internal/graph"
)

// fakeLLM is a scripted generation channel for tests. When responses is set,
// calls consume it in order; otherwise every call yields response/err.
type fakeLLM struct {
	response  string
	responses []string
	err       error

	calls      int
	lastPrompt string
	lastSystem string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return f.CompleteWithSystem(ctx, "", prompt)
}

func (f *fakeLLM) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastPrompt = userPrompt
	defer func() { f.calls++ }()

	if f.err != nil {
		return "", f.err
	}
	if f.responses != nil {
		if f.calls < len(f.responses) {
			return f.responses[f.calls], nil
		}
		return f.responses[len(f.responses)-1], nil
	}
	return f.response, nil
}

// fakeGateway returns a canned QueryResult and records the executed query.
type fakeGateway struct {
	result     graph.QueryResult
	lastCypher string
	calls      int
}

func (f *fakeGateway) Execute(ctx context.Context, cypher string) graph.QueryResult {
	f.calls++
	f.lastCypher = cypher
	return f.result
}
