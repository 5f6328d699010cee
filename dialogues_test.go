package main

import (
	"strings"
	"testing"

	"github.com/amitrohan/sequence-llm/predict"
	"github.com/stretchr/testify/assert"
)

func TestDialogueTable(t *testing.T) {
	m := predict.NewPhraseMap(dialogues)

	for key, candidates := range dialogues {
		words := strings.Fields(key)
		assert.GreaterOrEqual(t, len(words), 1, "key %q", key)
		assert.LessOrEqual(t, len(words), 3, "key %q", key)
		assert.NotEmpty(t, candidates, "key %q has no candidates", key)

		found, ok := m.Lookup(words)
		assert.True(t, ok, "key %q not found after construction", key)
		assert.Equal(t, candidates, found)
	}
}
