package memtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankier/fst/memtable"
	"github.com/frankier/fst/stream"
)

func TestTableSortsInserts(t *testing.T) {
	tbl := memtable.New[uint64]()
	tbl.SetString("cherry", 3)
	tbl.SetString("apple", 1)
	tbl.SetString("banana", 2)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []stream.Pair[uint64]{
		{Key: []byte("apple"), Output: 1},
		{Key: []byte("banana"), Output: 2},
		{Key: []byte("cherry"), Output: 3},
	}, stream.Collect[uint64](tbl.Stream()))
}

func TestTableDuplicateKeyReplaces(t *testing.T) {
	tbl := memtable.New[uint64]()
	tbl.SetString("a", 1)
	tbl.SetString("a", 9)

	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, []stream.Pair[uint64]{
		{Key: []byte("a"), Output: 9},
	}, stream.Collect[uint64](tbl.Stream()))
}

func TestTableSetCopiesKey(t *testing.T) {
	tbl := memtable.New[int]()
	key := []byte("mutable")
	tbl.Set(key, 1)
	key[0] = 'X'

	var got []string
	for k := range tbl.All() {
		got = append(got, string(k))
	}
	assert.Equal(t, []string{"mutable"}, got)
}

func TestTableStreamIsSnapshot(t *testing.T) {
	tbl := memtable.New[int]()
	tbl.SetString("a", 1)

	s := tbl.Stream()
	tbl.SetString("b", 2)

	pairs := stream.Collect[int](s)
	require.Len(t, pairs, 1)
	assert.Equal(t, []byte("a"), pairs[0].Key)
	assert.Equal(t, 2, tbl.Len())
}

func TestTableEmptyStream(t *testing.T) {
	tbl := memtable.New[uint64]()

	_, _, ok := tbl.Stream().Next()
	assert.False(t, ok)
}
