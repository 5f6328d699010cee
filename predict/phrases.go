package predict

import (
	"math"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PhraseMap maps a context phrase to the words that may follow it. Keys are
// space-joined word sequences, values are candidate continuations. The map is
// read-only after construction and may be shared freely across goroutines.
type PhraseMap struct {
	table map[string][]string
}

// NewPhraseMap builds a PhraseMap from raw phrase data. Keys are normalized to
// single-space separation, and candidate lists are copied so later mutation of
// the source map cannot affect lookups.
func NewPhraseMap(phrases map[string][]string) PhraseMap {
	table := make(map[string][]string, len(phrases))

	for key, candidates := range phrases {
		cpy := make([]string, len(candidates))
		copy(cpy, candidates)
		table[contextKey(strings.Fields(key))] = cpy
	}

	return PhraseMap{table: table}
}

// Lookup returns the candidate continuations for a context, if any
func (m PhraseMap) Lookup(context []string) ([]string, bool) {
	candidates, ok := m.table[contextKey(context)]
	return candidates, ok
}

func (m PhraseMap) Len() int {
	return len(m.table)
}

// Nearest returns the stored context closest to key by Levenshtein distance,
// along with the distance itself. Ties are broken arbitrarily.
func (m PhraseMap) Nearest(key string) (string, int, bool) {
	var nearest string
	minDistance := math.MaxInt

	for k := range m.table {
		if d := fuzzy.LevenshteinDistance(key, k); d < minDistance {
			minDistance = d
			nearest = k
		}
	}

	return nearest, minDistance, len(m.table) > 0
}

func contextKey(words []string) string {
	return strings.Join(words, " ")
}
