package chunkio

import "bytes"

// FindBoundary locates the first occurrence of delim in data and returns the
// end-exclusive index one past it. It reports found=false when data holds no
// complete occurrence.
//
// The match is a genuine substring search over the configured delimiter, for
// any delimiter length >= 1; it delegates to bytes.Index, which already
// switches to an advanced algorithm for long needles, so this hot path needs
// no custom search of its own.
//
// This is the zero-state core of the package: callers that manage their own
// buffers can use it directly and split data at data[:end] / data[end:].
func FindBoundary(data, delim []byte) (end int, found bool) {
	i := bytes.Index(data, delim)
	if i < 0 {
		return 0, false
	}

	return i + len(delim), true
}

// scanWindow bounds the re-scan after oldLen buffered bytes were extended to
// newLen. Occurrences entirely inside the appended bytes are detected before
// appending, so only an occurrence straddling the old/new boundary can be
// new: it starts within len(delim)-1 bytes before the boundary and ends
// within len(delim)-1 bytes after it.
func scanWindow(oldLen, newLen, delimLen int) (start, stop int) {
	start = oldLen - (delimLen - 1)
	if start < 0 {
		start = 0
	}

	stop = oldLen + (delimLen - 1)
	if stop > newLen {
		stop = newLen
	}

	return start, stop
}
