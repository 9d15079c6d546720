package fst

import (
	"bytes"
	"cmp"

	"github.com/frankier/fst/loser"
	"github.com/frankier/fst/stream"
)

// Interleave merges streams into a single ascending stream without
// collapsing duplicate keys: a key held by several inputs appears once
// per input. Equal keys order by output, then arbitrarily.
//
// This is the companion to the union cursor for callers that want every
// element rather than per-key contribution lists.
func Interleave[O cmp.Ordered](streams ...stream.Stream[O]) stream.Stream[O] {
	sources := make([]loser.Source[stream.Pair[O]], 0, len(streams))
	for _, s := range streams {
		sources = append(sources, func() (stream.Pair[O], bool) {
			key, output, ok := s.Next()
			if !ok {
				return stream.Pair[O]{}, false
			}
			return stream.Pair[O]{Key: key, Output: output}, true
		})
	}
	tree := loser.New(sources, func(a, b stream.Pair[O]) bool {
		if c := bytes.Compare(a.Key, b.Key); c != 0 {
			return c < 0
		}
		return a.Output < b.Output
	})
	return &interleaved[O]{tree: tree}
}

type interleaved[O cmp.Ordered] struct {
	tree *loser.Tree[stream.Pair[O]]
}

func (m *interleaved[O]) Next() ([]byte, O, bool) {
	p, ok := m.tree.Next()
	if !ok {
		var zero O
		return nil, zero, false
	}
	return p.Key, p.Output, true
}
