// Package chunkio provides low-allocation chunking of byte streams on a
// caller-supplied delimiter sequence.
//
// # Overview
//
// A Chunker wraps a byte Source and yields successive contiguous windows
// ("chunks") of the stream such that every chunk except possibly the last
// contains at least one full occurrence of the delimiter. Whenever the
// underlying source already holds a delimited chunk in its own buffer, the
// chunker hands that window out directly without copying; only chunks that
// span source reads are assembled in an internal accumulation buffer.
//
// This is aimed at parsers over record-oriented streams (for example text
// records separated by blank lines) that need predictable, low-allocation
// access to one record at a time without loading the whole stream.
//
// # Quick Start
//
// Streaming API:
//
//	c, _ := chunkio.NewChunker(chunkio.NewBytesSource(data), []byte("\n\n"))
//	for {
//	    chunk, err := c.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    // Process chunk. Valid until the next call on c.
//	}
//
// Or with a range-over-func loop:
//
//	for chunk, err := range c.Chunks() {
//	    ...
//	}
//
// The lower-level Fill/Consume protocol gives the caller control over how
// much of each chunk is consumed:
//
//	view, err := c.Fill()   // peek at the next chunk
//	c.Consume(len(view))    // release it
//
// # Zero-Copy Semantics
//
// Views returned by Fill, Next and Chunks may alias either the source's
// buffer or the chunker's internal buffer. They are valid only until the
// next call on the same Chunker; callers that need to retain a chunk must
// copy it (see the stream package helpers).
//
// # Memory
//
// If the delimiter never recurs, the accumulation buffer grows until the
// end of the stream. That is the documented default; callers that need a
// cap can set one with WithMaxBuffer, which makes Fill return
// ErrBufferLimit instead of growing further.
//
// # Concurrency
//
// A Chunker owns its buffer and its Source exclusively and is not safe for
// concurrent use. Use one Chunker per goroutine, or recycle instances
// through a ChunkerPool.
package chunkio
