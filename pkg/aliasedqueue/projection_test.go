package aliasedqueue

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQueue(t *testing.T) *AliasedPriorityQueue[string, int, string] {
	return mustNew(
		t,
		[]Entry[string, string]{
			{Alias: "c", Seed: One("c1")},
			{Alias: "a", Seed: Many("a1", "a2")},
			{Alias: "b", Seed: Many[string]()},
		},
		priorityKey(map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}),
	)
}

func TestToMap_IsCopy(t *testing.T) {
	q := testQueue(t)
	m := q.ToMap()
	m["a"][0] = "changed"
	m["z"] = []string{"z1"}
	assert.Equal(t, map[string][]string{"a": {"a1", "a2"}, "b": {}, "c": {"c1"}}, q.ToMap())
}

func TestFromMap_RoundTrip(t *testing.T) {
	keys := priorityKey(map[string]int{"a": 1, "b": 2, "c": 3, "d": 4})
	tests := map[string]func(q *AliasedPriorityQueue[string, int, string]){
		"unmodified": func(q *AliasedPriorityQueue[string, int, string]) {},
		"after enqueue": func(q *AliasedPriorityQueue[string, int, string]) {
			_ = q.Enqueue("b1", "b")
			_ = q.Enqueue("c2", "c")
		},
		"after dequeue": func(q *AliasedPriorityQueue[string, int, string]) {
			_, _ = q.Dequeue()
		},
		"after add and delete": func(q *AliasedPriorityQueue[string, int, string]) {
			q.AddQueue("d")
			_ = q.Enqueue("d1", "d")
			q.DelQueue("a")
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			q := testQueue(t)
			mutate(q)

			fromMap, err := FromMap(q.ToMap(), keys)
			require.NoError(t, err)
			assert.True(t, q.Equal(fromMap))

			fromEntries, err := New(q.Entries(), keys)
			require.NoError(t, err)
			assert.True(t, q.Equal(fromEntries))

			expected := q.Drain()
			assert.Equal(t, expected, fromMap.Drain())
			assert.Equal(t, expected, fromEntries.Drain())
		})
	}
}

func TestString(t *testing.T) {
	q := testQueue(t)
	assert.Equal(t, "AliasedPriorityQueue[a:[a1 a2] b:[] c:[c1]]", q.String())

	empty := mustNew[string, string](t, nil, priorityKey(nil))
	assert.Equal(t, "AliasedPriorityQueue[]", empty.String())
}

func TestEqual(t *testing.T) {
	tests := map[string]struct {
		mutate   func(q *AliasedPriorityQueue[string, int, string])
		expected bool
	}{
		"identical": {
			mutate:   func(q *AliasedPriorityQueue[string, int, string]) {},
			expected: true,
		},
		"extra item": {
			mutate: func(q *AliasedPriorityQueue[string, int, string]) {
				_ = q.Enqueue("b1", "b")
			},
			expected: false,
		},
		"extra empty sub-queue": {
			mutate: func(q *AliasedPriorityQueue[string, int, string]) {
				q.AddQueue("d")
			},
			expected: false,
		},
		"missing sub-queue": {
			mutate: func(q *AliasedPriorityQueue[string, int, string]) {
				q.DelQueue("b")
			},
			expected: false,
		},
		"same items different sub-queue": {
			mutate: func(q *AliasedPriorityQueue[string, int, string]) {
				_, _ = q.Dequeue()
				_ = q.Enqueue("a1", "b")
			},
			expected: false,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a := testQueue(t)
			b := testQueue(t)
			tc.mutate(b)
			assert.Equal(t, tc.expected, a.Equal(b))
			assert.Equal(t, tc.expected, b.Equal(a))

			ha, err := a.Hash()
			require.NoError(t, err)
			hb, err := b.Hash()
			require.NoError(t, err)
			if tc.expected {
				assert.Equal(t, ha, hb)
			}
		})
	}
}

func TestEqual_Nil(t *testing.T) {
	var a, b *AliasedPriorityQueue[string, int, string]
	assert.True(t, a.Equal(b))
	assert.False(t, testQueue(t).Equal(nil))
	assert.False(t, a.Equal(testQueue(t)))
}

func TestEqual_WithOptions(t *testing.T) {
	a := testQueue(t)
	b := mustNew(
		t,
		[]Entry[string, string]{
			{Alias: "a", Seed: Many("A1", "A2")},
			{Alias: "b", Seed: Many[string]()},
			{Alias: "c", Seed: One("C1")},
		},
		priorityKey(map[string]int{"a": 1, "b": 2, "c": 3}),
	)
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(b, cmp.Comparer(strings.EqualFold)))

	// Hash has no notion of the options above.
	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestHash(t *testing.T) {
	a := testQueue(t)
	b := testQueue(t)
	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	// Moving an item between sub-queues changes the hash.
	_, _ = b.Dequeue()
	require.NoError(t, b.Enqueue("a1", "c"))
	hb, err = b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestHash_Unhashable(t *testing.T) {
	q := mustNew(
		t,
		[]Entry[string, func()]{{Alias: "a", Seed: One(func() {})}},
		priorityKey(nil),
	)
	_, err := q.Hash()
	assert.Error(t, err)
}
