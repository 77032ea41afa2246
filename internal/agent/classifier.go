package agent

import (
	"context"
	"fmt"

	"clubgraph/internal/llm"
)

const classifyPrompt = `You are a classifier for the 'ITC BLIDA' (ITCommunity Club) AI assistant.
Determine if the user's question requires querying the Knowledge Graph about the club's internal data or if it is general conversation.

Knowledge Graph covers:
- Members/Employees (names, roles)
- Departments (Development, Design, Marketing, Content Creation, HR)
- Events (ITC TALKS, ITCup, WelcomeDay)
- Projects/Workshops

Respond with ONLY 'graph' or 'general'.

Question: %s`

// Classifier decides whether a question needs the knowledge graph.
type Classifier struct {
	llm llm.Client
}

// NewClassifier creates a classifier backed by the generation channel.
func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{llm: client}
}

// Classify labels the question as graph or general. A generation channel
// failure is returned to the caller; malformed decision text degrades to
// general via ParseClassification.
func (c *Classifier) Classify(ctx context.Context, question string) (Classification, error) {
	decision, err := c.llm.Complete(ctx, fmt.Sprintf(classifyPrompt, question))
	if err != nil {
		return "", fmt.Errorf("classification failed: %w", err)
	}
	return ParseClassification(decision), nil
}
