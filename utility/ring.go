package utility

// Ring is a constant-memory buffer that retains the most recently pushed
// elements, overwriting the oldest element when full
type Ring[T any] struct {
	buf       []T
	len, head int
}

func NewRing[T any](cap int) *Ring[T] {
	if cap <= 0 {
		panic("Capacity must be a nonzero, positive integer")
	}

	return &Ring[T]{
		buf:  make([]T, cap),
		head: cap - 1,
	}
}

func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

func (r *Ring[T]) Len() int {
	return r.len
}

// Push adds an element to the ring. If the ring is at capacity, the oldest
// retained element is overwritten
func (r *Ring[T]) Push(el T) {
	// Perform bookkeeping
	r.head = (r.head + 1) % r.Cap()

	if r.Len() < r.Cap() {
		r.len++
	}

	// Overwrite next element
	r.buf[r.head] = el
}

// Items returns the retained elements in order of insertion, oldest first. The
// returned slice is a copy and safe to hold onto.
func (r *Ring[T]) Items() []T {
	items := make([]T, r.Len())
	oldest := (r.head - r.Len() + 1 + r.Cap()) % r.Cap()

	for i := 0; i < r.Len(); i++ {
		items[i] = r.buf[(oldest+i)%r.Cap()]
	}

	return items
}

// Peek returns the most recently pushed element. If empty, a
// default-initialized value is returned
func (r *Ring[T]) Peek() T {
	return r.buf[r.head]
}

func (r *Ring[T]) Full() bool {
	return r.Len() == r.Cap()
}
