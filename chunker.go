package chunkio

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// Chunker reads a Source and exposes the same Fill/Consume protocol one
// level up, with a stronger guarantee: every view it returns contains at
// least one full occurrence of the delimiter, except for the final view of
// the stream, which may be an undelimited tail.
//
// A Chunker is in one of four states between calls: empty (no buffered
// bytes), accumulating (buffered bytes without a delimiter), ready (the
// buffered view holds a delimiter) or exhausted (the source reported EOF).
// Fill is idempotent: without an intervening Consume it returns identical
// bytes on every call and performs no I/O once ready.
type Chunker struct {
	src   Source
	delim []byte

	buf     []byte // accumulation buffer; chunks that span source reads
	ready   bool   // buf contains an unconsumed delimiter occurrence
	eof     bool   // src reported io.EOF
	max     int    // accumulation cap, 0 = unbounded
	pending int    // bytes returned by the last Next, consumed on the next one
}

// NewChunker creates a Chunker that splits src after each occurrence of
// delim. The delimiter must not be empty; it is copied and never mutated.
func NewChunker(src Source, delim []byte, opts ...Option) (*Chunker, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	if len(delim) == 0 {
		return nil, ErrNoDelimiter
	}

	cfg := config{bufCap: DefaultBufferCapacity}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Chunker{
		src:   src,
		delim: bytes.Clone(delim),
		buf:   make([]byte, 0, cfg.bufCap),
		max:   cfg.maxBuffer,
	}, nil
}

// Fill returns a view of the next chunk without consuming it.
//
// The view contains at least one delimiter occurrence, except at the end of
// the stream where the leftover bytes form one final undelimited chunk.
// Once the stream is fully consumed, Fill returns io.EOF.
//
// When the source's own view already holds a delimiter, Fill returns that
// view directly without copying. Such a view aliases the source's buffer,
// so it must be consumed before anything else touches the source.
//
// Any other source error propagates unchanged. Bytes accumulated before the
// failure stay buffered and a later Fill resumes where it left off.
func (c *Chunker) Fill() ([]byte, error) {
	if c.ready {
		return c.buf, nil
	}

	if len(c.buf) == 0 && !c.eof {
		// Zero-copy fast path: hand out the source's view untouched when
		// it already contains a full chunk.
		view, err := c.src.Fill()
		if err == io.EOF {
			c.eof = true

			return nil, io.EOF
		}

		if err != nil {
			return nil, err
		}

		if _, ok := FindBoundary(view, c.delim); ok {
			return view, nil
		}
	}

	if c.eof {
		if len(c.buf) > 0 {
			return c.buf, nil
		}

		return nil, io.EOF
	}

	return c.topUp()
}

// topUp pulls source views into the accumulation buffer until it holds a
// delimiter or the source is exhausted. On entry the buffer never contains
// an unconsumed delimiter occurrence.
func (c *Chunker) topUp() ([]byte, error) {
	for {
		view, err := c.src.Fill()
		if err == io.EOF {
			c.eof = true

			if len(c.buf) == 0 {
				return nil, io.EOF
			}

			// The one documented exception: the final chunk may lack
			// the delimiter.
			return c.buf, nil
		}

		if err != nil {
			return nil, err
		}

		if end, ok := FindBoundary(view, c.delim); ok {
			// Take only through the end of the occurrence; the rest
			// stays in the source, keeping the fast path available for
			// the next chunk.
			c.buf = append(c.buf, view[:end]...)
			c.src.Consume(end)
			c.ready = true

			return c.buf, nil
		}

		oldLen := len(c.buf)

		if c.max > 0 && oldLen+len(view) > c.max {
			return nil, fmt.Errorf("%w: %d bytes accumulated, limit %d",
				ErrBufferLimit, oldLen+len(view), c.max)
		}

		c.buf = append(c.buf, view...)
		c.src.Consume(len(view))

		// A delimiter inside the view was ruled out above, so only an
		// occurrence straddling the old/new boundary can be new.
		start, stop := scanWindow(oldLen, len(c.buf), len(c.delim))
		if _, ok := FindBoundary(c.buf[start:stop], c.delim); ok {
			c.ready = true

			return c.buf, nil
		}
	}
}

// Consume discards n bytes from the front of the most recently returned
// view. n beyond that view's length is a caller bug and panics; the partial
// remainder of a chunk stays available to subsequent Fill calls.
func (c *Chunker) Consume(n int) {
	if len(c.buf) > 0 {
		if n < 0 || n > len(c.buf) {
			panic(fmt.Sprintf("chunkio: Consume(%d) beyond chunk of %d bytes", n, len(c.buf)))
		}

		c.buf = c.buf[:copy(c.buf, c.buf[n:])]
		if len(c.buf) == 0 {
			c.ready = false

			return
		}

		_, c.ready = FindBoundary(c.buf, c.delim)

		return
	}

	// Fast-path view: the bytes live in the source's buffer.
	c.src.Consume(n)
}

// Next returns the next chunk, consuming the previous one. It returns
// io.EOF when the stream is exhausted.
//
// The returned slice is valid until the next call on the Chunker. Next
// keeps its own notion of the outstanding chunk, so do not mix it with
// manual Fill/Consume on the same Chunker.
func (c *Chunker) Next() ([]byte, error) {
	if c.pending > 0 {
		c.Consume(c.pending)
		c.pending = 0
	}

	view, err := c.Fill()
	if err != nil {
		return nil, err
	}

	c.pending = len(view)

	return view, nil
}

// Chunks returns an iterator over the remaining chunks of the stream. Each
// yielded chunk is valid only for that iteration of the loop body; it is
// consumed when the body returns. A source failure is yielded as a final
// non-nil error, while plain end of stream just ends the loop.
func (c *Chunker) Chunks() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			chunk, err := c.Next()
			if err == io.EOF {
				return
			}

			if err != nil {
				yield(nil, err)

				return
			}

			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// Reset resets the chunker to process a new stream, keeping the delimiter,
// options and allocated buffer.
func (c *Chunker) Reset(src Source) {
	c.src = src
	c.buf = c.buf[:0]
	c.ready = false
	c.eof = false
	c.pending = 0
}

// Delimiter returns a copy of the configured delimiter.
func (c *Chunker) Delimiter() []byte {
	return bytes.Clone(c.delim)
}

// Buffered returns the number of bytes currently held in the accumulation
// buffer. Fast-path views do not count; they live in the source.
func (c *Chunker) Buffered() int {
	return len(c.buf)
}
