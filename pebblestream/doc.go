// Package pebblestream adapts a Pebble database scan to the sorted
// stream contract, so persisted key/value data can feed the merge
// engine directly.
//
// Pebble iterators already yield keys in ascending byte order and only
// guarantee each key until the next advance, which matches the stream
// contract exactly; keys pass through without copying.
//
// The stream contract has no error channel. A scan or decode failure
// makes the source report exhaustion; the error is then available from
// Err and from Close.
package pebblestream
