package chunkio

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDelimiter is returned when the delimiter is empty.
	ErrNoDelimiter = errors.New("delimiter must not be empty")

	// ErrNilSource is returned when the source is nil.
	ErrNilSource = errors.New("source must not be nil")

	// ErrInvalidBufferCapacity is returned when the initial buffer capacity is negative.
	ErrInvalidBufferCapacity = errors.New("buffer capacity must not be negative")

	// ErrInvalidMaxBuffer is returned when the buffer limit is negative.
	ErrInvalidMaxBuffer = errors.New("max buffer must not be negative")

	// ErrBufferLimit is returned by Fill when the accumulation buffer would
	// exceed the limit set with WithMaxBuffer before a delimiter was found.
	ErrBufferLimit = errors.New("buffer limit reached without delimiter")
)

// DefaultBufferCapacity is the initial accumulation buffer capacity (4 KiB).
// The buffer still grows past it on demand.
const DefaultBufferCapacity = 4 * 1024

// Option is a function that configures a Chunker.
type Option func(*config) error

// config holds the configuration for chunking.
type config struct {
	bufCap    int
	maxBuffer int
}

// validate checks the configuration and adjusts dependent values.
func (c *config) validate() error {
	// Auto-adjust the initial capacity under a tighter limit.
	if c.maxBuffer > 0 && c.bufCap > c.maxBuffer {
		c.bufCap = c.maxBuffer
	}

	return nil
}

// WithBufferCapacity pre-sizes the accumulation buffer to avoid regrowth for
// workloads with a known typical chunk size.
func WithBufferCapacity(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidBufferCapacity, n)
		}

		c.bufCap = n

		return nil
	}
}

// WithMaxBuffer caps accumulation growth: once the buffer holds n bytes with
// no delimiter in sight, Fill returns ErrBufferLimit instead of growing
// further. Zero (the default) means unbounded growth until end of stream.
func WithMaxBuffer(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidMaxBuffer, n)
		}

		c.maxBuffer = n

		return nil
	}
}
