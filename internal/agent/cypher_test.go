package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	clean := "MATCH (m:Member) RETURN m.name"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean query untouched", clean, clean},
		{"cypher fence", "```cypher\n" + clean + "\n```", clean},
		{"bare fence", "```\n" + clean + "\n```", clean},
		{"fence without newlines", "```cypher" + clean + "```", clean},
		{"surrounding whitespace", "  \n" + clean + "\n  ", clean},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.input))
		})
	}
}

func TestStripCodeFences_Idempotent(t *testing.T) {
	inputs := []string{
		"MATCH (m:Member) RETURN m.name",
		"```cypher\nMATCH (e:Event) RETURN e.name\n```",
		"```\nMATCH (d:Department) RETURN d\n```",
		"",
	}

	for _, input := range inputs {
		once := stripCodeFences(input)
		twice := stripCodeFences(once)
		assert.Equal(t, once, twice, "stripping %q twice changed the result", input)
	}
}

func TestCypherSynthesizer_Synthesize(t *testing.T) {
	t.Run("strips fences from channel output", func(t *testing.T) {
		client := &fakeLLM{response: "```cypher\nMATCH (m:Member) RETURN m.name\n```"}
		s := NewCypherSynthesizer(client)

		query, err := s.Synthesize(context.Background(), "Who are the members?")
		require.NoError(t, err)
		assert.Equal(t, "MATCH (m:Member) RETURN m.name", query)
	})

	t.Run("prompt carries question and schema", func(t *testing.T) {
		client := &fakeLLM{response: "MATCH (n) RETURN n"}
		s := NewCypherSynthesizer(client)

		_, err := s.Synthesize(context.Background(), "Who leads Design?")
		require.NoError(t, err)
		assert.True(t, strings.Contains(client.lastPrompt, "Who leads Design?"))
		assert.True(t, strings.Contains(client.lastPrompt, "(:Department)-[:HOSTS]->(:Event)"))
	})

	t.Run("channel failure propagates", func(t *testing.T) {
		client := &fakeLLM{err: errors.New("connection reset")}
		s := NewCypherSynthesizer(client)

		_, err := s.Synthesize(context.Background(), "Who are the members?")
		assert.Error(t, err)
	})
}
