package fst

import (
	"cmp"

	"github.com/frankier/fst/stream"
)

// Cursor is the common pull surface of Union and Intersection: one
// merged key per call with its contribution list, until exhausted.
type Cursor[O cmp.Ordered] interface {
	Next() (key []byte, outs []Contribution[O], ok bool)
}

// Combined applies a caller-chosen combination policy to each merged
// key, turning a cursor back into a plain sorted stream. Merges compose
// this way: combine one Op's cursor and register the result with
// another Op.
func Combined[O cmp.Ordered](c Cursor[O], combine func([]Contribution[O]) O) stream.Stream[O] {
	return &combined[O]{cur: c, combine: combine}
}

type combined[O cmp.Ordered] struct {
	cur     Cursor[O]
	combine func([]Contribution[O]) O
}

func (s *combined[O]) Next() ([]byte, O, bool) {
	key, outs, ok := s.cur.Next()
	if !ok {
		var zero O
		return nil, zero, false
	}
	return key, s.combine(outs), true
}

// Sum is a combination policy that adds every contribution's output,
// starting from the zero value.
func Sum[O cmp.Ordered](outs []Contribution[O]) O {
	var total O
	for _, c := range outs {
		total += c.Output
	}
	return total
}
