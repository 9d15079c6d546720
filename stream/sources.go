package stream

import (
	"cmp"
	"iter"
)

// Pairs streams a slice of pairs in slice order. The slice must already
// be sorted by key.
type Pairs[O cmp.Ordered] struct {
	pairs []Pair[O]
	next  int
}

// FromPairs builds a stream over pairs, which must be sorted ascending
// by key. The pairs are not copied.
func FromPairs[O cmp.Ordered](pairs ...Pair[O]) *Pairs[O] {
	return &Pairs[O]{pairs: pairs}
}

// FromStrings builds a zero-output stream over keys, which must be
// sorted ascending. Useful for treating a plain key set as a stream.
func FromStrings(keys ...string) *Pairs[uint64] {
	pairs := make([]Pair[uint64], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[uint64]{Key: []byte(k)}
	}
	return &Pairs[uint64]{pairs: pairs}
}

func (p *Pairs[O]) Next() ([]byte, O, bool) {
	if p.next >= len(p.pairs) {
		var zero O
		return nil, zero, false
	}
	pair := p.pairs[p.next]
	p.next++
	return pair.Key, pair.Output, true
}

// Seq adapts a pull iterator obtained from an iter.Seq2 sequence.
type Seq[O cmp.Ordered] struct {
	next func() ([]byte, O, bool)
	stop func()
	done bool
}

// FromSeq2 adapts an iterator sequence of key/output pairs to a stream.
// The sequence must yield keys in strictly ascending order.
//
// The underlying iterator is released when the sequence is exhausted;
// callers that abandon the stream early should call Stop.
func FromSeq2[O cmp.Ordered](seq iter.Seq2[[]byte, O]) *Seq[O] {
	next, stop := iter.Pull2(seq)
	return &Seq[O]{next: next, stop: stop}
}

func (s *Seq[O]) Next() ([]byte, O, bool) {
	if s.done {
		var zero O
		return nil, zero, false
	}
	key, output, ok := s.next()
	if !ok {
		s.Stop()
		var zero O
		return nil, zero, false
	}
	return key, output, true
}

// Stop releases the underlying iterator. The stream reports exhaustion
// afterwards. Stop is idempotent.
func (s *Seq[O]) Stop() {
	if !s.done {
		s.done = true
		s.stop()
	}
}
