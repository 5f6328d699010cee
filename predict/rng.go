package predict

import "math/rand"

// Rng selects candidate indexes during generation. Abstracted so tests can
// substitute a deterministic source for exact-output assertions.
type Rng interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// defaultRng delegates to the top-level math/rand functions, which are safe
// for concurrent use
type defaultRng struct{}

func (defaultRng) Intn(n int) int {
	return rand.Intn(n)
}
