package stream

import "bytes"

// Split is a zero-copy splitter over an in-memory buffer: a pull Iterator
// yielding successive subslices of data, each ending with sep except
// possibly the last. It allocates nothing; every piece aliases data.
//
// It is the natural second stage after a chunker: split the current chunk
// into records or fields in place, then consume the chunk.
type Split struct {
	data []byte
	sep  []byte
	off  int
}

// NewSplit returns a Split over data using separator sep.
func NewSplit(data, sep []byte) *Split {
	return &Split{data: data, sep: sep}
}

// Next implements Iterator. The returned piece includes its trailing
// separator and is valid until the Split is advanced or reset.
func (s *Split) Next() ([]byte, bool) {
	if s.off >= len(s.data) {
		return nil, false
	}

	rest := s.data[s.off:]

	i := bytes.Index(rest, s.sep)
	if i < 0 {
		s.off = len(s.data)

		return rest, true
	}

	end := i + len(s.sep)
	s.off += end

	return rest[:end], true
}

// Reset repositions the splitter over new data, keeping the separator.
func (s *Split) Reset(data []byte) {
	s.data = data
	s.off = 0
}
