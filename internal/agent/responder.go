package agent

import (
	"context"
	"fmt"

	"clubgraph/internal/llm"
)

const personaPrompt = "You are a helpful assistant for ITC BLIDA, a scientific club at Saad Dahleb University."

// Responder handles general conversation without touching the store.
type Responder struct {
	llm llm.Client
}

// NewResponder creates a conversational responder backed by the generation
// channel.
func NewResponder(client llm.Client) *Responder {
	return &Responder{llm: client}
}

// Respond produces a single-turn answer grounded only in the club persona.
// Channel failures are returned to the caller.
func (r *Responder) Respond(ctx context.Context, question string) (string, error) {
	answer, err := r.llm.CompleteWithSystem(ctx, personaPrompt, question)
	if err != nil {
		return "", fmt.Errorf("responder failed: %w", err)
	}
	return answer, nil
}
