package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	got := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, got)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestIterSeq2Skip(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"a": 1, "b": 2}
	got := maps.Collect(IterSeq2Skip(maps.All(m), func(key string) bool { return key == "a" }))
	assert.Equal(map[string]int{"b": 2}, got)
}

func TestIterSorted(t *testing.T) {
	assert := assert.New(t)

	var keys []string
	for key := range IterSorted(map[string]int{"c": 3, "a": 1, "b": 2}) {
		keys = append(keys, key)
	}
	assert.Equal([]string{"a", "b", "c"}, keys)
}
