package fst

import "cmp"

// Union is a lazy cursor over every distinct key across all input
// streams, in ascending order. For each key it reports one contribution
// per input stream whose current head equals it.
type Union[O cmp.Ordered] struct {
	heap *streamHeap[O]
	outs []Contribution[O]
	cur  *slot[O]
}

// Next returns the smallest unreported key together with its
// contributions. The key and the contribution slice are borrowed: they
// are only valid until the following call.
//
// The slot that produced the key is withheld from the heap and its
// stream is not advanced until that following call, so no input is read
// ahead of what the caller has consumed.
func (u *Union[O]) Next() ([]byte, []Contribution[O], bool) {
	if u.cur != nil {
		u.heap.refill(u.cur)
		u.cur = nil
	}
	s, ok := u.heap.pop()
	if !ok {
		return nil, nil, false
	}
	u.cur = s
	u.outs = append(u.outs[:0], s.contribution())
	for {
		dup, ok := u.heap.popIfEqual(s.key)
		if !ok {
			break
		}
		u.outs = append(u.outs, dup.contribution())
		u.heap.refill(dup)
	}
	return s.key, u.outs, true
}
