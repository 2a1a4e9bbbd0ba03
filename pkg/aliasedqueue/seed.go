package aliasedqueue

// Seed is the initial content given for one alias at construction time.
// It is either a single item (One) or an ordered sequence of items (Many).
// The zero value is neither and is rejected by New.
type Seed[T any] struct {
	items []T
	set   bool
}

// One returns a Seed holding a single item.
func One[T any](item T) Seed[T] {
	return Seed[T]{items: []T{item}, set: true}
}

// Many returns a Seed holding items in order. Many() with no arguments is valid
// and declares an empty sub-queue.
func Many[T any](items ...T) Seed[T] {
	copied := make([]T, len(items))
	copy(copied, items)
	return Seed[T]{items: copied, set: true}
}

// Items returns a copy of the seeded items.
func (s Seed[T]) Items() []T {
	rv := make([]T, len(s.items))
	copy(rv, s.items)
	return rv
}

func (s Seed[T]) valid() bool {
	return s.set
}

// Entry pairs an alias with its seed.
type Entry[A comparable, T any] struct {
	Alias A
	Seed  Seed[T]
}
