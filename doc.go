// Package fst merges any number of sorted key/output streams into a
// single sorted pass, as either a union (keys present in any input) or
// an intersection (keys present in every input).
//
// Streams are merged lazily: each input is read exactly one element
// ahead of what the cursor has produced, and each input's pending head
// is held in a per-stream buffer that is reused for the lifetime of the
// merge. The cursors never combine outputs themselves; for every merged
// key they report the list of (stream index, output) contributions and
// leave the combination policy to the caller.
//
// Basic usage:
//
//	a := stream.FromStrings("aa", "b", "cc")
//	b := stream.FromStrings("b", "cc", "z")
//
//	u := fst.NewOp[uint64]().Add(a).Add(b).Union()
//	for {
//	    key, outs, ok := u.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("%s matched by %d stream(s)\n", key, len(outs))
//	}
//
// Cursors compose: Combined turns a cursor plus a combination policy
// back into a plain sorted stream, which can be registered with another
// Op.
package fst
