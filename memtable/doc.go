// Package memtable provides an in-memory staging table that accepts
// key/output pairs in any order and streams them back sorted. It fills
// the builder role for the merge engine's collaborators and tests: load
// keys, then hand out single-pass sorted streams.
//
// Basic usage:
//
//	t := memtable.New[uint64]()
//	t.SetString("cherry", 3)
//	t.SetString("apple", 1)
//	t.SetString("banana", 2)
//
//	s := t.Stream()
//	for key, output, ok := s.Next(); ok; key, output, ok = s.Next() {
//	    fmt.Printf("%s=%d\n", key, output)
//	}
//
// A Table is not safe for concurrent use.
package memtable
