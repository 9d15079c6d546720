package fst

import "cmp"

// Intersection is a lazy cursor over every key present in all input
// streams, in ascending order. For each emitted key it reports exactly
// one contribution per input stream.
//
// The match count is compared against the registered stream count, so
// once any input exhausts, the intersection exhausts with it. A merge
// over zero streams is immediately exhausted.
type Intersection[O cmp.Ordered] struct {
	heap *streamHeap[O]
	outs []Contribution[O]
	cur  *slot[O]
}

// Next returns the smallest key not yet reported that every input
// stream contains, together with its contributions. The key and the
// contribution slice are borrowed: they are only valid until the
// following call.
func (n *Intersection[O]) Next() ([]byte, []Contribution[O], bool) {
	if n.cur != nil {
		n.heap.refill(n.cur)
		n.cur = nil
	}
	for {
		s, ok := n.heap.pop()
		if !ok {
			return nil, nil, false
		}
		n.outs = append(n.outs[:0], s.contribution())
		popped := 1
		for {
			dup, ok := n.heap.popIfEqual(s.key)
			if !ok {
				break
			}
			n.outs = append(n.outs, dup.contribution())
			n.heap.refill(dup)
			popped++
		}
		if popped < n.heap.numSlots() {
			// Candidate rejected: some stream is elsewhere. Every
			// matched slot was already refilled, so refilling s leaves
			// no slot parked at a stale key.
			n.heap.refill(s)
			continue
		}
		n.cur = s
		return s.key, n.outs, true
	}
}
