package agent

import (
	"context"
	"fmt"
	"strings"

	"clubgraph/internal/llm"
)

// schemaDescription is the static store schema given to the synthesizer.
// It mirrors what the seed loader actually creates.
const schemaDescription = `Nodes:
- Member (id, name, role)
- Department (name)        // e.g. Development, Design, Marketing
- Event (name, date)       // e.g. ITC TALKS, ITCup
- Project (name, year, status)
- Partner (name, kind)

Relationships:
- (:Member)-[:MEMBER_OF]->(:Department)
- (:Member)-[:ORGANIZES]->(:Event)
- (:Member)-[:CONTRIBUTES_TO]->(:Project)
- (:Department)-[:HOSTS]->(:Event)
- (:Department)-[:LEADS]->(:Project)
- (:Partner)-[:SPONSORS]->(:Event)
- (:Partner)-[:SUPPORTS]->(:Project)`

const cypherPrompt = `Task: Generate a Cypher query for Neo4j to answer the question for ITC BLIDA club.
Schema: %s

Question: %s

Instructions:
- RETURN only the relevant data.
- Do NOT markdown format the query (no ` + "```cypher" + `).
- Case insensitive search is safer (use toLower()).
- Return ONLY the Cypher query text.
- IMPORTANT: Node labels are 'Member', 'Department', 'Event', 'Project', 'Partner'.`

// CypherSynthesizer turns a question into a single Cypher query. It does not
// validate the query; a malformed query surfaces as an execution fault at the
// gateway.
type CypherSynthesizer struct {
	llm llm.Client
}

// NewCypherSynthesizer creates a synthesizer backed by the generation channel.
func NewCypherSynthesizer(client llm.Client) *CypherSynthesizer {
	return &CypherSynthesizer{llm: client}
}

// Synthesize produces the Cypher query text for a question. Generation
// channel failures are returned to the caller.
func (s *CypherSynthesizer) Synthesize(ctx context.Context, question string) (string, error) {
	raw, err := s.llm.Complete(ctx, fmt.Sprintf(cypherPrompt, schemaDescription, question))
	if err != nil {
		return "", fmt.Errorf("query synthesis failed: %w", err)
	}
	return stripCodeFences(raw), nil
}

// stripCodeFences removes markdown code-fence markers the channel may wrap
// the query in, despite instructions. Idempotent: a clean query is returned
// unchanged.
func stripCodeFences(query string) string {
	query = strings.TrimSpace(query)
	query = strings.ReplaceAll(query, "```cypher", "")
	query = strings.ReplaceAll(query, "```", "")
	return strings.TrimSpace(query)
}
