// Package llm implements the generation channel: chat-completion clients
// behind a small Client interface. Providers are hand-rolled HTTP clients
// speaking the OpenAI-compatible and Gemini wire formats.
package llm

import "context"

// Client defines the minimal interface the agent pipeline uses to call an LLM.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
