package fst

import (
	"cmp"

	"github.com/frankier/fst/stream"
)

// Contribution records that the input stream registered at Index
// currently matches the cursor's key with the given output.
type Contribution[O cmp.Ordered] struct {
	Index  int
	Output O
}

// Op accumulates sorted input streams and finalises into a union or an
// intersection cursor.
type Op[O cmp.Ordered] struct {
	streams []stream.Stream[O]
	opts    options
}

// NewOp returns an empty merge builder.
func NewOp[O cmp.Ordered](opts ...Option) *Op[O] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Op[O]{opts: o}
}

// Add registers a stream and returns the builder for chaining. The
// stream's ordinal, reported as Contribution.Index, is its registration
// order starting at zero. The builder takes exclusive ownership of the
// stream.
func (o *Op[O]) Add(s stream.Stream[O]) *Op[O] {
	o.streams = append(o.streams, s)
	return o
}

// Union finalises the builder into a cursor over every key present in
// any input. The builder is consumed; no stream may be added afterwards.
func (o *Op[O]) Union() *Union[O] {
	return &Union[O]{heap: o.finish()}
}

// Intersection finalises the builder into a cursor over every key
// present in all inputs. The builder is consumed; no stream may be
// added afterwards.
func (o *Op[O]) Intersection() *Intersection[O] {
	return &Intersection[O]{heap: o.finish()}
}

func (o *Op[O]) finish() *streamHeap[O] {
	streams := o.streams
	o.streams = nil
	return newStreamHeap(streams, o.opts.keyBufferSize)
}
