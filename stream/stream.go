package stream

import (
	"cmp"
	"iter"
)

// Stream is a single-pass producer of key/output pairs in strictly
// ascending byte-lexicographic key order.
//
// The returned key is only valid until the following call to Next;
// implementations are free to reuse its backing array. Callers that
// need a key beyond one step must copy it.
//
// Streams must be sorted. Out-of-order input is not detected; merging
// such a stream produces well-defined but meaningless results.
type Stream[O cmp.Ordered] interface {
	Next() (key []byte, output O, ok bool)
}

// Pair is one key/output element of a sorted stream.
type Pair[O cmp.Ordered] struct {
	Key    []byte
	Output O
}

// All drains s as an iterator sequence. Each yielded key is only valid
// for the duration of that yield.
func All[O cmp.Ordered](s Stream[O]) iter.Seq2[[]byte, O] {
	return func(yield func([]byte, O) bool) {
		for {
			key, output, ok := s.Next()
			if !ok {
				return
			}
			if !yield(key, output) {
				return
			}
		}
	}
}

// Collect drains s into a slice, copying every key.
func Collect[O cmp.Ordered](s Stream[O]) []Pair[O] {
	var pairs []Pair[O]
	for key, output := range All(s) {
		k := make([]byte, len(key))
		copy(k, key)
		pairs = append(pairs, Pair[O]{Key: k, Output: output})
	}
	return pairs
}
