package internal

import (
	"maps"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	all := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, all)

	count := 0
	for range IterSeq2Concat(maps.All(b), maps.All(a)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestIterSeqRange(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{3, 4, 5}, slices.Collect(IterSeqRange(3, 5)))
	assert.Empty(slices.Collect(IterSeqRange(5, 3)))
	assert.Equal([]int16{-1, 0}, slices.Collect(IterSeqRange[int16](-1, 0)))
}

func TestIterSeq2Map(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Map(IterSeqRange(1, 3), func(n int) (string, int) {
		return strconv.Itoa(n), n * n
	})
	assert.Equal(map[string]int{"1": 1, "2": 4, "3": 9}, maps.Collect(seq))
}
