package aliasedqueue

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/pkg/errors"
)

// ToMap returns a copy of the queue contents keyed by alias.
func (q *AliasedPriorityQueue[A, K, T]) ToMap() map[A][]T {
	rv := make(map[A][]T, len(q.queues))
	for _, sq := range q.queues {
		rv[sq.alias] = sq.values()
	}
	return rv
}

// Entries returns the queue contents in priority order.
// Passing the result to New with the same key function recreates the queue.
func (q *AliasedPriorityQueue[A, K, T]) Entries() []Entry[A, T] {
	rv := make([]Entry[A, T], len(q.queues))
	for i, sq := range q.queues {
		rv[i] = Entry[A, T]{Alias: sq.alias, Seed: Many(sq.values()...)}
	}
	return rv
}

func (q *AliasedPriorityQueue[A, K, T]) String() string {
	var sb strings.Builder
	sb.WriteString("AliasedPriorityQueue[")
	for i, sq := range q.queues {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v:%v", sq.alias, sq.values())
	}
	sb.WriteString("]")
	return sb.String()
}

// Equal reports whether q and other hold the same aliases in the same order
// and pairwise equal item sequences. Items are compared with cmp.Equal and opts.
// Key functions are not compared.
func (q *AliasedPriorityQueue[A, K, T]) Equal(other *AliasedPriorityQueue[A, K, T], opts ...cmp.Option) bool {
	if q == nil || other == nil {
		return q == other
	}
	if len(q.queues) != len(other.queues) {
		return false
	}
	for i := range q.queues {
		a, b := q.queues[i], other.queues[i]
		if a.alias != b.alias || a.len() != b.len() {
			return false
		}
		if !cmp.Equal(a.values(), b.values(), opts...) {
			return false
		}
	}
	return true
}

type hashedSubQueue[A comparable, T any] struct {
	Alias A
	Items []T
}

// Hash returns a hash of the aliases and items in priority order.
// Queues for which Equal, called without options, reports true hash to the same value;
// the converse doesn't hold. Options passed to Equal aren't taken into account.
// An error is returned if an alias or item can't be hashed, e.g., a func or chan.
func (q *AliasedPriorityQueue[A, K, T]) Hash() (uint64, error) {
	view := make([]hashedSubQueue[A, T], len(q.queues))
	for i, sq := range q.queues {
		view[i] = hashedSubQueue[A, T]{Alias: sq.alias, Items: sq.values()}
	}
	h, err := hashstructure.Hash(view, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, errors.Wrap(err, "error hashing aliased priority queue")
	}
	return h, nil
}
