package chunkio

import "math/rand/v2"

// DefaultMaxFragment is the default fragment length cap.
const DefaultMaxFragment = 5

// FragmentSource is a Source decorator that returns a random-length prefix
// (zero up to a small cap, clipped to what is available) of the wrapped
// source's view on every Fill.
//
// It exists to stress boundary-spanning logic in whatever consumes it:
// with a cap below the delimiter length, every delimiter occurrence is
// forced to arrive split across multiple reads. Consume forwards unchanged,
// so fragmenting a source never changes the bytes it delivers, only how
// they are sliced up.
type FragmentSource struct {
	src Source
	max int
	rng *rand.Rand
}

// NewFragmentSource wraps src, limiting each view to at most maxFragment
// bytes (DefaultMaxFragment if zero or negative). The supplied generator
// drives the fragment lengths; passing one seeded with rand.NewPCG makes a
// run fully reproducible. A nil rng falls back to a fixed-seed generator.
func NewFragmentSource(src Source, maxFragment int, rng *rand.Rand) *FragmentSource {
	if maxFragment < 1 {
		maxFragment = DefaultMaxFragment
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}

	return &FragmentSource{src: src, max: maxFragment, rng: rng}
}

// Fill implements Source. Zero-length prefixes are deliberate; the consumer
// has to tolerate fruitless reads.
func (s *FragmentSource) Fill() ([]byte, error) {
	view, err := s.src.Fill()
	if err != nil {
		return nil, err
	}

	n := s.rng.IntN(s.max + 1)
	if n > len(view) {
		n = len(view)
	}

	return view[:n], nil
}

// Consume implements Source.
func (s *FragmentSource) Consume(n int) {
	s.src.Consume(n)
}
