package fst

import (
	"bytes"
	"cmp"

	"github.com/frankier/fst/priority"
	"github.com/frankier/fst/stream"
)

// slot buffers one input stream's pending head element. The key buffer
// is reused across refills; it grows as needed and never shrinks.
type slot[O cmp.Ordered] struct {
	idx    int
	key    []byte
	output O
}

func newSlot[O cmp.Ordered](idx, bufSize int) *slot[O] {
	return &slot[O]{
		idx: idx,
		key: make([]byte, 0, bufSize),
	}
}

func (s *slot[O]) fill(key []byte, output O) {
	s.key = append(s.key[:0], key...)
	s.output = output
}

func (s *slot[O]) contribution() Contribution[O] {
	return Contribution[O]{Index: s.idx, Output: s.output}
}

// streamHeap owns the input streams and holds at most one pending slot
// per stream, ordered ascending by (key, output). The stream ordinal is
// deliberately not a tie-breaker: among slots with equal key and output
// the pop order is unspecified.
type streamHeap[O cmp.Ordered] struct {
	rdrs []stream.Stream[O]
	heap *priority.Queue[int, *slot[O]]
}

func newStreamHeap[O cmp.Ordered](streams []stream.Stream[O], bufSize int) *streamHeap[O] {
	h := &streamHeap[O]{
		rdrs: streams,
		heap: priority.NewQueue[int](func(a, b *slot[O]) bool {
			if c := bytes.Compare(a.key, b.key); c != 0 {
				return c < 0
			}
			return a.output < b.output
		}),
	}
	for i := range h.rdrs {
		h.refill(newSlot[O](i, bufSize))
	}
	return h
}

// pop removes and returns the slot with the smallest pending key.
func (h *streamHeap[O]) pop() (*slot[O], bool) {
	_, s, ok := h.heap.Pop()
	return s, ok
}

// popIfEqual pops the minimum slot only when its key equals key,
// leaving the heap untouched otherwise.
func (h *streamHeap[O]) popIfEqual(key []byte) (*slot[O], bool) {
	_, s, ok := h.heap.Peek()
	if !ok || !bytes.Equal(s.key, key) {
		return nil, false
	}
	return h.pop()
}

// refill advances the slot's stream and reinserts it. An exhausted
// stream retires its slot for the remainder of the operation.
func (h *streamHeap[O]) refill(s *slot[O]) {
	key, output, ok := h.rdrs[s.idx].Next()
	if !ok {
		return
	}
	s.fill(key, output)
	h.heap.Set(s.idx, s)
}

// numSlots is the registered stream count, exhausted streams included.
func (h *streamHeap[O]) numSlots() int {
	return len(h.rdrs)
}
