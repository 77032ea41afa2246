package agent

import (
	"context"
	"fmt"

	"clubgraph/internal/graph"
	"clubgraph/internal/llm"
)

const answerPrompt = `You are the AI assistant for ITC BLIDA (ITCommunity Club at Saad Dahleb University).
Question: %s
Database Results: %s

Formulate a concise, natural language answer based on the results.
If results are empty, say you couldn't find information in the club's records.`

// Degraded answers for retrieval that yields nothing usable. Produced
// deterministically so the user never sees raw store faults.
const (
	noRecordsAnswer  = "I couldn't find any matching information in the club's records."
	storeFaultAnswer = "I couldn't find that information in the club's records right now. Please try again later."
)

// AnswerSynthesizer turns retrieved records into a natural-language answer.
type AnswerSynthesizer struct {
	llm llm.Client
}

// NewAnswerSynthesizer creates an answer synthesizer backed by the
// generation channel.
func NewAnswerSynthesizer(client llm.Client) *AnswerSynthesizer {
	return &AnswerSynthesizer{llm: client}
}

// RenderContext renders a QueryResult into the textual context blob kept on
// the pipeline state. A failed result renders as its failure description.
func RenderContext(result graph.QueryResult) string {
	if result.Failed() {
		return fmt.Sprintf("Error executing query: %v", result.Err)
	}
	if len(result.Records) == 0 {
		return "[]"
	}
	return fmt.Sprintf("%v", result.Records)
}

// Synthesize produces the final answer for the graph path. Empty and failed
// results short-circuit to a degraded answer without consulting the
// generation channel, so the "nothing found" behavior holds unconditionally
// and fault text never reaches the user. Channel failures on the grounded
// path are returned to the caller.
func (a *AnswerSynthesizer) Synthesize(ctx context.Context, question string, result graph.QueryResult) (string, error) {
	if result.Failed() {
		return storeFaultAnswer, nil
	}
	if result.Empty() {
		return noRecordsAnswer, nil
	}

	answer, err := a.llm.Complete(ctx, fmt.Sprintf(answerPrompt, question, RenderContext(result)))
	if err != nil {
		return "", fmt.Errorf("answer synthesis failed: %w", err)
	}
	return answer, nil
}
