package fst

// options defines all configuration options for a merge builder.
type options struct {
	keyBufferSize int // initial capacity reserved for each slot's key buffer
}

// Option is a function that configures the merge builder.
type Option func(*options)

// WithKeyBufferSize sets the initial capacity reserved for each input
// stream's key buffer. A longer key grows the buffer; it is never
// shrunk afterwards.
func WithKeyBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.keyBufferSize = n
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		keyBufferSize: 64,
	}
}
