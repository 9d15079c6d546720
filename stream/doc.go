// Package stream defines the sorted key/output stream contract consumed
// by the merge engine, together with adapters for building streams from
// in-memory data and from iterator sequences.
//
// A Stream is a single-pass, forward-only producer of key/output pairs
// whose keys are strictly ascending in byte-lexicographic order. There
// is no rewind and no concurrent use. The key returned by Next is
// borrowed: it remains valid only until the following call, which lets
// producers reuse a single backing buffer for the lifetime of the
// stream.
//
// The output type parameter is any ordered scalar; its zero value acts
// as the additive identity, so plain key sets are modeled as streams
// whose outputs are all zero.
package stream
