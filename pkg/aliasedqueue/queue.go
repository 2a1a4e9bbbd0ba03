package aliasedqueue

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// KeyFunc maps an alias onto the value sub-queues are ordered by.
// Sub-queues with smaller keys are dequeued from first.
type KeyFunc[A comparable, K constraints.Ordered] func(alias A) K

// Identity orders sub-queues by their aliases.
func Identity[A constraints.Ordered](alias A) A {
	return alias
}

// AliasedPriorityQueue is a priority queue made of named FIFO sub-queues.
// Dequeue returns the front item of the first non-empty sub-queue,
// where sub-queues are ordered by applying the key function to their aliases.
// The key function is re-applied to every alias whenever a sub-queue is added or removed,
// so it may depend on state that changes between those calls.
//
// An AliasedPriorityQueue is not safe for concurrent use.
type AliasedPriorityQueue[A comparable, K constraints.Ordered, T any] struct {
	// Sub-queues sorted by key.
	queues []*subQueue[A, K, T]
	// Index into queues by alias. Always holds exactly the sub-queues in queues.
	queuesByAlias map[A]*subQueue[A, K, T]
	keyFunc       KeyFunc[A, K]
}

// New creates an AliasedPriorityQueue seeded with entries.
// Entries sharing an alias are merged into one sub-queue in the order given.
func New[A comparable, K constraints.Ordered, T any](entries []Entry[A, T], keyFunc KeyFunc[A, K]) (*AliasedPriorityQueue[A, K, T], error) {
	if keyFunc == nil {
		return nil, errors.WithStack(&ErrInvalidArgument{
			Name:    "keyFunc",
			Value:   nil,
			Message: "a key function is required to order sub-queues",
		})
	}
	q := &AliasedPriorityQueue[A, K, T]{
		queues:        make([]*subQueue[A, K, T], 0, len(entries)),
		queuesByAlias: make(map[A]*subQueue[A, K, T], len(entries)),
		keyFunc:       keyFunc,
	}
	for i, entry := range entries {
		if !entry.Seed.valid() {
			return nil, errors.WithStack(&ErrInvalidArgument{
				Name:    fmt.Sprintf("entries[%d].Seed", i),
				Value:   entry.Alias,
				Message: "seed must be created with One or Many",
			})
		}
		sq, ok := q.queuesByAlias[entry.Alias]
		if !ok {
			sq = q.insert(entry.Alias)
		}
		sq.push(entry.Seed.items...)
	}
	q.sort()
	return q, nil
}

// FromMap creates an AliasedPriorityQueue with one sub-queue per key of m.
// It is the inverse of ToMap.
func FromMap[A comparable, K constraints.Ordered, T any](m map[A][]T, keyFunc KeyFunc[A, K]) (*AliasedPriorityQueue[A, K, T], error) {
	entries := make([]Entry[A, T], 0, len(m))
	for alias, items := range m {
		entries = append(entries, Entry[A, T]{Alias: alias, Seed: Many(items...)})
	}
	return New(entries, keyFunc)
}

// Enqueue appends item to the back of the sub-queue named alias.
func (q *AliasedPriorityQueue[A, K, T]) Enqueue(item T, alias A) error {
	sq, ok := q.queuesByAlias[alias]
	if !ok {
		return errors.WithStack(&ErrUnknownAlias{Alias: alias, Message: "cannot enqueue"})
	}
	sq.push(item)
	return nil
}

// Dequeue removes and returns the front item of the highest-priority non-empty sub-queue.
// It returns ErrEmpty if all sub-queues are empty.
func (q *AliasedPriorityQueue[A, K, T]) Dequeue() (T, error) {
	for _, sq := range q.queues {
		if item, ok := sq.pop(); ok {
			return item, nil
		}
	}
	var zero T
	return zero, ErrEmpty
}

// Drain dequeues every remaining item and returns them in dequeue order.
func (q *AliasedPriorityQueue[A, K, T]) Drain() []T {
	rv := make([]T, 0, q.Len())
	for {
		item, err := q.Dequeue()
		if err != nil {
			return rv
		}
		rv = append(rv, item)
	}
}

// AddQueue adds an empty sub-queue named alias and re-sorts all sub-queues.
// Returns false, leaving the queue unchanged, if the alias is already in use.
func (q *AliasedPriorityQueue[A, K, T]) AddQueue(alias A) bool {
	if _, ok := q.queuesByAlias[alias]; ok {
		return false
	}
	q.insert(alias)
	q.sort()
	return true
}

// DelQueue removes the sub-queue named alias together with any items it holds
// and re-sorts the remaining sub-queues. Returns false if there is no such sub-queue.
func (q *AliasedPriorityQueue[A, K, T]) DelQueue(alias A) bool {
	sq, ok := q.queuesByAlias[alias]
	if !ok {
		return false
	}
	i := slices.Index(q.queues, sq)
	q.queues = slices.Delete(q.queues, i, i+1)
	delete(q.queuesByAlias, alias)
	q.sort()
	return true
}

// AllAliases returns the aliases of all sub-queues in priority order.
func (q *AliasedPriorityQueue[A, K, T]) AllAliases() []A {
	rv := make([]A, len(q.queues))
	for i, sq := range q.queues {
		rv[i] = sq.alias
	}
	return rv
}

// Has reports whether a sub-queue named alias exists.
func (q *AliasedPriorityQueue[A, K, T]) Has(alias A) bool {
	_, ok := q.queuesByAlias[alias]
	return ok
}

// Len returns the number of items across all sub-queues.
func (q *AliasedPriorityQueue[A, K, T]) Len() int {
	n := 0
	for _, sq := range q.queues {
		n += sq.len()
	}
	return n
}

// LenOf returns the number of items in the sub-queue named alias.
func (q *AliasedPriorityQueue[A, K, T]) LenOf(alias A) (int, error) {
	sq, ok := q.queuesByAlias[alias]
	if !ok {
		return 0, errors.WithStack(&ErrUnknownAlias{Alias: alias})
	}
	return sq.len(), nil
}

func (q *AliasedPriorityQueue[A, K, T]) insert(alias A) *subQueue[A, K, T] {
	sq := newSubQueue[A, K, T](alias)
	q.queues = append(q.queues, sq)
	q.queuesByAlias[alias] = sq
	return sq
}

// sort orders sub-queues by the current output of the key function,
// which may differ from the output when they were last sorted.
func (q *AliasedPriorityQueue[A, K, T]) sort() {
	for _, sq := range q.queues {
		sq.key = q.keyFunc(sq.alias)
	}
	slices.SortStableFunc(q.queues, func(a, b *subQueue[A, K, T]) bool {
		return a.key < b.key
	})
}
