package pebblestream

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// Options configures a Source.
type Options struct {
	// LowerBound and UpperBound restrict the scan to the half-open key
	// range [LowerBound, UpperBound), as in pebble.IterOptions.
	LowerBound []byte
	UpperBound []byte
}

// Source streams a Pebble database's keys in ascending order. It is
// single-pass: once exhausted (or failed) it stays exhausted.
type Source[O cmp.Ordered] struct {
	it     *pebble.Iterator
	decode func([]byte) (O, error)
	first  bool
	err    error
}

// New opens an ascending scan over db. decode converts each stored
// value into the stream's output type.
func New[O cmp.Ordered](db *pebble.DB, decode func([]byte) (O, error), opts *Options) (*Source[O], error) {
	if db == nil {
		return nil, errors.New("pebblestream: db cannot be nil")
	}
	if decode == nil {
		return nil, errors.New("pebblestream: decode cannot be nil")
	}

	var iterOpts *pebble.IterOptions
	if opts != nil {
		iterOpts = &pebble.IterOptions{
			LowerBound: opts.LowerBound,
			UpperBound: opts.UpperBound,
		}
	}

	it, err := db.NewIter(iterOpts)
	if err != nil {
		return nil, fmt.Errorf("pebblestream: failed to open iterator: %w", err)
	}

	return &Source[O]{it: it, decode: decode, first: true}, nil
}

// Next returns the next key/output pair. The key is only valid until
// the following call.
func (s *Source[O]) Next() ([]byte, O, bool) {
	var zero O
	if s.err != nil {
		return nil, zero, false
	}

	var valid bool
	if s.first {
		valid = s.it.First()
		s.first = false
	} else {
		valid = s.it.Next()
	}
	if !valid {
		s.err = s.it.Error()
		return nil, zero, false
	}

	output, err := s.decode(s.it.Value())
	if err != nil {
		s.err = fmt.Errorf("pebblestream: failed to decode value at %q: %w", s.it.Key(), err)
		return nil, zero, false
	}

	return s.it.Key(), output, true
}

// Err reports the first scan or decode error encountered, if any.
func (s *Source[O]) Err() error {
	return s.err
}

// Close releases the iterator and reports any error seen during the
// scan.
func (s *Source[O]) Close() error {
	cerr := s.it.Close()
	if s.err != nil {
		return s.err
	}
	return cerr
}

// Uint64 decodes a little-endian uint64 value.
func Uint64(v []byte) (uint64, error) {
	if len(v) != 8 {
		return 0, fmt.Errorf("pebblestream: expected 8-byte value, got %d bytes", len(v))
	}
	return binary.LittleEndian.Uint64(v), nil
}

// AppendUint64 appends the little-endian encoding Uint64 reads back.
func AppendUint64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}
