package predict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhraseMapLookup(t *testing.T) {
	m := NewPhraseMap(testDialogues)
	assert.Equal(t, len(testDialogues), m.Len())

	// Every inserted phrase must be found under its exact key sequence
	for key, expected := range testDialogues {
		candidates, ok := m.Lookup(strings.Fields(key))
		assert.True(t, ok, "missing key %q", key)
		assert.Equal(t, expected, candidates)
	}

	_, ok := m.Lookup([]string{"kitne"})
	assert.False(t, ok, "partial key should not match")
	_, ok = m.Lookup(nil)
	assert.False(t, ok, "empty context should not match")
}

func TestPhraseMapNormalizesKeys(t *testing.T) {
	m := NewPhraseMap(map[string][]string{"  kitne \t aadmi ": {"the?"}})

	candidates, ok := m.Lookup([]string{"kitne", "aadmi"})
	assert.True(t, ok)
	assert.Equal(t, []string{"the?"}, candidates)
}

func TestPhraseMapIsolatedFromSource(t *testing.T) {
	src := map[string][]string{"kitne aadmi": {"the?"}}
	m := NewPhraseMap(src)

	src["kitne aadmi"][0] = "clobbered"
	src["jo dar"] = []string{"gaya"}

	candidates, ok := m.Lookup([]string{"kitne", "aadmi"})
	assert.True(t, ok)
	assert.Equal(t, []string{"the?"}, candidates)

	_, ok = m.Lookup([]string{"jo", "dar"})
	assert.False(t, ok)
}

func TestPhraseMapNearest(t *testing.T) {
	m := NewPhraseMap(map[string][]string{
		"kitne aadmi": {"the?"},
		"pani puri":   {"khana"},
	})

	nearest, distance, ok := m.Nearest("kitne aadmi the")
	assert.True(t, ok)
	assert.Equal(t, "kitne aadmi", nearest)
	assert.Equal(t, 4, distance)

	_, _, ok = NewPhraseMap(nil).Nearest("anything")
	assert.False(t, ok)
}
