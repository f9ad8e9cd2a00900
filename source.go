package chunkio

import (
	"fmt"
	"io"
)

// Source is a byte-window provider: any buffered byte stream (file, socket,
// decompressor) that can expose its unconsumed bytes without copying.
//
// A Chunker speaks the same protocol one level up, so chunkers compose with
// any Source, including other decorators such as FragmentSource.
type Source interface {
	// Fill returns a view of the currently available, unconsumed bytes,
	// performing at most one blocking read if nothing is buffered. It
	// returns io.EOF - not an empty view - once the stream is exhausted
	// and no further bytes will ever arrive. The view is only valid until
	// the next call on the Source.
	Fill() ([]byte, error)

	// Consume discards n bytes from the front of the most recently
	// returned view. n must not exceed that view's length; violating
	// this is a caller bug and implementations panic on it.
	Consume(n int)
}

// maxConsecutiveEmptyReads mirrors bufio: an io.Reader returning (0, nil)
// this many times in a row is reported as io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// defaultSourceSize is the default ReaderSource buffer size.
const defaultSourceSize = 64 * 1024

// ReaderSource adapts an io.Reader to the Source interface using a fixed
// internal buffer. Fill performs at most one (non-empty) read per call when
// the buffer is empty, so short reads surface as short views rather than
// being coalesced.
type ReaderSource struct {
	r   io.Reader
	buf []byte
	off int   // read position in buf
	end int   // write position in buf
	err error // read error held back until the buffered bytes are consumed
}

// NewReaderSource returns a ReaderSource over r with the default buffer size.
func NewReaderSource(r io.Reader) *ReaderSource {
	return NewReaderSourceSize(r, defaultSourceSize)
}

// NewReaderSourceSize returns a ReaderSource over r whose buffer holds up to
// size bytes. Sizes below one byte are raised to the default.
func NewReaderSourceSize(r io.Reader, size int) *ReaderSource {
	if size < 1 {
		size = defaultSourceSize
	}

	return &ReaderSource{r: r, buf: make([]byte, size)}
}

// Fill implements Source.
func (s *ReaderSource) Fill() ([]byte, error) {
	if s.off < s.end {
		return s.buf[s.off:s.end], nil
	}

	if s.err != nil {
		err := s.err
		// io.EOF is terminal; a hard error is reported once and the
		// next Fill reads again, leaving any retry to the reader.
		if err != io.EOF {
			s.err = nil
		}

		return nil, err
	}

	s.off, s.end = 0, 0

	for range maxConsecutiveEmptyReads {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			s.end = n
			// Hold back a same-call error, io.EOF or not; it is
			// reported once the returned bytes have been consumed.
			s.err = err

			return s.buf[:n], nil
		}

		if err != nil {
			if err == io.EOF {
				s.err = io.EOF
			}

			return nil, err
		}
	}

	return nil, io.ErrNoProgress
}

// Consume implements Source.
func (s *ReaderSource) Consume(n int) {
	if n < 0 || n > s.end-s.off {
		panic(fmt.Sprintf("chunkio: Consume(%d) beyond view of %d bytes", n, s.end-s.off))
	}

	s.off += n
}

// Reset discards buffered state and switches the source to read from r.
func (s *ReaderSource) Reset(r io.Reader) {
	s.r = r
	s.off, s.end = 0, 0
	s.err = nil
}

// BytesSource is an in-memory Source over a byte slice. Every Fill returns a
// view of the remaining bytes directly, so a Chunker on top of it stays on
// the zero-copy fast path for any chunk whose delimiter is still ahead.
type BytesSource struct {
	data []byte
	off  int
}

// NewBytesSource returns a Source reading from data. The slice is not
// copied; the caller must not mutate it while the source is in use.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

// Fill implements Source.
func (s *BytesSource) Fill() ([]byte, error) {
	if s.off >= len(s.data) {
		return nil, io.EOF
	}

	return s.data[s.off:], nil
}

// Consume implements Source.
func (s *BytesSource) Consume(n int) {
	if n < 0 || n > len(s.data)-s.off {
		panic(fmt.Sprintf("chunkio: Consume(%d) beyond view of %d bytes", n, len(s.data)-s.off))
	}

	s.off += n
}

// Reset rewinds the source to the start of data.
func (s *BytesSource) Reset(data []byte) {
	s.data = data
	s.off = 0
}
