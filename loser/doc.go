// Package loser implements a tournament tree (loser tree) for merging
// multiple sorted sources into one sorted sequence. The layout follows
// the design by Bryan Boreham (https://github.com/bboreham/go-loser),
// reworked into a pull interface: sources are plain next-functions and
// the merged sequence is consumed one element at a time.
//
// A loser tree is a binary tree where each internal node records the
// loser of the contest between its two subtrees and the root records
// the overall winner. Advancing the winner only replays the games on
// its leaf-to-root path, so merging costs O(log n) comparisons per
// element across n sources.
//
// Exhaustion is tracked per leaf rather than with a maximum sentinel
// value, so element types without a greatest element (byte strings,
// say) merge without special casing.
//
// Basic usage:
//
//	a := slices.Values([]int{1, 3, 5})
//	next, stop := iter.Pull(a)
//	defer stop()
//
//	tree := loser.New([]loser.Source[int]{next, ...}, func(a, b int) bool {
//	    return a < b
//	})
//	for {
//	    v, ok := tree.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v)
//	}
package loser
