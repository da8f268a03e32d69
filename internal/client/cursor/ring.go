package cursor

// Ring is a bounded FIFO. Pushing onto a full ring evicts the oldest item.
type Ring[T any] struct {
	buf  []T
	head int
	n    int
}

// NewRing returns an empty ring holding at most capacity items (minimum 1).
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v. When the ring was full the oldest item is returned with ok set.
func (r *Ring[T]) Push(v T) (evicted T, ok bool) {
	if r.n == len(r.buf) {
		evicted, ok = r.buf[r.head], true
		r.buf[r.head] = v
		r.head = (r.head + 1) % len(r.buf)
		return evicted, ok
	}
	r.buf[(r.head+r.n)%len(r.buf)] = v
	r.n++
	return evicted, false
}

// RemoveFunc removes the oldest item matching match, keeping the order of the rest.
func (r *Ring[T]) RemoveFunc(match func(T) bool) (removed T, ok bool) {
	items := r.Items()
	for i, v := range items {
		if !match(v) {
			continue
		}
		r.reset(append(items[:i], items[i+1:]...))
		return v, true
	}
	return removed, false
}

// Items returns the contents, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.n)
	for i := range out {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

func (r *Ring[T]) Len() int { return r.n }

func (r *Ring[T]) Cap() int { return len(r.buf) }

// Clear empties the ring.
func (r *Ring[T]) Clear() { r.reset(nil) }

func (r *Ring[T]) reset(items []T) {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	copy(r.buf, items)
	r.head = 0
	r.n = len(items)
}
