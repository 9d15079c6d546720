// Package priority implements a generic binary min-queue whose entries
// are indexed by a unique key. The queue holds at most one entry per
// key at a time: setting a key that is already present reprioritises it
// in place instead of inserting a duplicate.
//
// The ordering is supplied as a comparison function over values; the
// function should return true when its first argument has higher
// priority (sorts earlier) than its second.
//
// Key features:
//   - Generic over any comparable key type and any value type
//   - O(log n) insertion, reprioritisation and removal
//   - O(1) peek and key membership tests
//   - At most one entry per key, enforced structurally
//
// Basic usage:
//
//	q := priority.NewQueue[int, string](func(a, b string) bool {
//	    return a < b
//	})
//
//	q.Set(0, "cherry")
//	q.Set(1, "apple")
//	q.Set(2, "banana")
//
//	for q.Len() > 0 {
//	    key, value, _ := q.Pop()
//	    fmt.Println(key, value)
//	}
//
// The queue is not safe for concurrent use.
package priority
