package chunkio

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressedSource is a ReaderSource over a streaming decompressor. Close
// releases decompressor resources; chunking an entire stream to io.EOF and
// then closing is the expected lifecycle.
type CompressedSource struct {
	*ReaderSource

	closeFn func() error
}

// Close releases the underlying decompressor. It is safe to call more than
// once.
func (s *CompressedSource) Close() error {
	if s.closeFn == nil {
		return nil
	}

	fn := s.closeFn
	s.closeFn = nil

	return fn()
}

// NewGzipSource returns a Source that transparently decompresses the
// gzip-compressed stream r.
func NewGzipSource(r io.Reader) (*CompressedSource, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &CompressedSource{
		ReaderSource: NewReaderSource(zr),
		closeFn:      zr.Close,
	}, nil
}

// NewZstdSource returns a Source that transparently decompresses the
// zstd-compressed stream r.
func NewZstdSource(r io.Reader, opts ...zstd.DOption) (*CompressedSource, error) {
	zr, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, err
	}

	return &CompressedSource{
		ReaderSource: NewReaderSource(zr),
		closeFn: func() error {
			zr.Close()

			return nil
		},
	}, nil
}

// NewLZ4Source returns a Source that transparently decompresses the
// lz4-compressed stream r. lz4 readers hold no resources, so Close is a
// no-op here and exists for symmetry.
func NewLZ4Source(r io.Reader) *CompressedSource {
	return &CompressedSource{ReaderSource: NewReaderSource(lz4.NewReader(r))}
}
