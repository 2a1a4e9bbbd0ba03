package aliasedqueue

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// subQueue is a single FIFO identified by alias.
// key holds the output of the key function as of the last sort.
type subQueue[A comparable, K any, T any] struct {
	alias A
	key   K
	items *doublylinkedlist.List
}

func newSubQueue[A comparable, K any, T any](alias A) *subQueue[A, K, T] {
	return &subQueue[A, K, T]{
		alias: alias,
		items: doublylinkedlist.New(),
	}
}

func (q *subQueue[A, K, T]) push(items ...T) {
	for _, item := range items {
		q.items.Add(item)
	}
}

func (q *subQueue[A, K, T]) pop() (T, bool) {
	v, ok := q.items.Get(0)
	if !ok {
		var zero T
		return zero, false
	}
	q.items.Remove(0)
	// A nil interface value stored for an interface T comes back as the zero T.
	item, _ := v.(T)
	return item, true
}

func (q *subQueue[A, K, T]) len() int {
	return q.items.Size()
}

// values returns the queued items front to back.
func (q *subQueue[A, K, T]) values() []T {
	rv := make([]T, 0, q.items.Size())
	it := q.items.Iterator()
	for it.Next() {
		item, _ := it.Value().(T)
		rv = append(rv, item)
	}
	return rv
}
