// Package agent implements the question-answering pipeline: classify the
// question, then either synthesize and run a Cypher query and answer from
// its results, or respond conversationally. Each run is independent; no
// state survives a request.
package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clubgraph/internal/graph"
	"clubgraph/internal/llm"
)

// Gateway executes a synthesized query against the knowledge graph. Store
// faults are reported inside the QueryResult, never as a returned error.
type Gateway interface {
	Execute(ctx context.Context, cypher string) graph.QueryResult
}

// Result is the pipeline output for one question.
type Result struct {
	Question       string
	Classification Classification
	// Context is the rendered retrieval context. Set if and only if the
	// graph path was taken; on a store fault it holds the failure
	// description.
	Context string
	Answer  string
}

// state is a pipeline position. Transitions are strictly forward.
type state int

const (
	stateStart state = iota
	stateClassified
	stateQuerySynthesized
	stateExecuted
	stateAnswered
	stateTerminal
)

// pipelineState is the per-request record threaded through the states.
type pipelineState struct {
	question       string
	classification Classification
	cypher         string
	result         graph.QueryResult
	context        string
	answer         string
}

// Pipeline wires the pipeline stages together.
type Pipeline struct {
	classifier  *Classifier
	synthesizer *CypherSynthesizer
	gateway     Gateway
	answerer    *AnswerSynthesizer
	responder   *Responder
	logger      *zap.Logger
}

// NewPipeline creates a pipeline from a generation channel and a store
// gateway.
func NewPipeline(client llm.Client, gateway Gateway, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		classifier:  NewClassifier(client),
		synthesizer: NewCypherSynthesizer(client),
		gateway:     gateway,
		answerer:    NewAnswerSynthesizer(client),
		responder:   NewResponder(client),
		logger:      logger,
	}
}

// Run answers one question. Generation channel failures are returned to the
// caller; store faults are absorbed into a degraded answer and never surface
// as an error.
func (p *Pipeline) Run(ctx context.Context, question string) (Result, error) {
	st := &pipelineState{question: question}

	for current := stateStart; current != stateTerminal; {
		next, err := p.transition(ctx, current, st)
		if err != nil {
			return Result{}, err
		}
		current = next
	}

	return Result{
		Question:       st.question,
		Classification: st.classification,
		Context:        st.context,
		Answer:         st.answer,
	}, nil
}

// transition runs the work for the current state and returns the next one.
func (p *Pipeline) transition(ctx context.Context, current state, st *pipelineState) (state, error) {
	switch current {
	case stateStart:
		classification, err := p.classifier.Classify(ctx, st.question)
		if err != nil {
			return current, err
		}
		st.classification = classification
		p.logger.Debug("question classified",
			zap.String("question", st.question),
			zap.String("classification", string(classification)))
		return stateClassified, nil

	case stateClassified:
		if st.classification == ClassificationGraph {
			cypher, err := p.synthesizer.Synthesize(ctx, st.question)
			if err != nil {
				return current, err
			}
			st.cypher = cypher
			p.logger.Debug("cypher synthesized", zap.String("query", cypher))
			return stateQuerySynthesized, nil
		}

		answer, err := p.responder.Respond(ctx, st.question)
		if err != nil {
			return current, err
		}
		st.answer = answer
		return stateAnswered, nil

	case stateQuerySynthesized:
		// The gateway absorbs store faults; a failed result still moves
		// forward so the user gets a degraded answer instead of an error.
		st.result = p.gateway.Execute(ctx, st.cypher)
		st.context = RenderContext(st.result)
		return stateExecuted, nil

	case stateExecuted:
		answer, err := p.answerer.Synthesize(ctx, st.question, st.result)
		if err != nil {
			return current, err
		}
		st.answer = answer
		return stateAnswered, nil

	case stateAnswered:
		return stateTerminal, nil

	default:
		return current, fmt.Errorf("invalid pipeline state: %d", current)
	}
}
