package memtable

import (
	"bytes"
	"cmp"
	"iter"

	"github.com/google/btree"

	"github.com/frankier/fst/stream"
)

type entry[O cmp.Ordered] struct {
	key    []byte
	output O
}

// Table accumulates key/output pairs in any insertion order and yields
// them in ascending key order. Setting a key again replaces its output.
type Table[O cmp.Ordered] struct {
	tree *btree.BTreeG[entry[O]]
}

// New creates an empty table.
func New[O cmp.Ordered]() *Table[O] {
	return &Table[O]{
		tree: btree.NewG(2, func(a, b entry[O]) bool {
			return bytes.Compare(a.key, b.key) < 0
		}),
	}
}

// Set inserts or replaces the output for key. The key is copied.
func (t *Table[O]) Set(key []byte, output O) {
	k := make([]byte, len(key))
	copy(k, key)
	t.tree.ReplaceOrInsert(entry[O]{key: k, output: output})
}

// SetString inserts or replaces the output for a string key.
func (t *Table[O]) SetString(key string, output O) {
	t.tree.ReplaceOrInsert(entry[O]{key: []byte(key), output: output})
}

// Len returns the number of distinct keys in the table.
func (t *Table[O]) Len() int {
	return t.tree.Len()
}

// All yields the table contents in ascending key order.
func (t *Table[O]) All() iter.Seq2[[]byte, O] {
	return func(yield func([]byte, O) bool) {
		t.tree.Ascend(func(e entry[O]) bool {
			return yield(e.key, e.output)
		})
	}
}

// Stream returns a single-pass sorted stream over a snapshot of the
// table. Sets made after the call do not show up in the stream.
func (t *Table[O]) Stream() *stream.Seq[O] {
	snap := &Table[O]{tree: t.tree.Clone()}
	return stream.FromSeq2(snap.All())
}
