package agent

import "strings"

// Classification is the routing decision for a question: answer from the
// knowledge graph, or answer conversationally.
type Classification string

const (
	ClassificationGraph   Classification = "graph"
	ClassificationGeneral Classification = "general"
)

// ParseClassification converts raw decision text from the generation channel
// into a Classification. The channel is asked to reply with a single label
// but may hedge or add commentary, so a case-insensitive substring match on
// "graph" is the fallback parsing policy; anything else maps to general.
// Malformed or empty text never produces an error.
func ParseClassification(raw string) Classification {
	if strings.Contains(strings.ToLower(raw), string(ClassificationGraph)) {
		return ClassificationGraph
	}
	return ClassificationGeneral
}
