package slices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Unique([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []int{}, Unique([]int{}))
	assert.Nil(t, Unique([]int(nil)))
}

func TestMapAndGroupByFuncs(t *testing.T) {
	type queue struct {
		alias    string
		priority int
	}
	input := []queue{{"a", 1}, {"b", 2}, {"a", 3}}
	expected := map[string][]int{
		"a": {1, 3},
		"b": {2},
	}
	actual := MapAndGroupByFuncs(
		input,
		func(q queue) string { return q.alias },
		func(q queue) int { return q.priority },
	)
	assert.Equal(t, expected, actual)
}
