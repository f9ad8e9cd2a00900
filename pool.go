package chunkio

import "sync"

// ChunkerPool recycles Chunker instances for high-throughput scenarios
// where many short streams are chunked with the same delimiter and options,
// keeping their accumulation buffers warm instead of reallocating.
type ChunkerPool struct {
	pool  sync.Pool
	delim []byte
	opts  []Option
}

// NewChunkerPool creates a pool whose chunkers all split on delim with the
// given options.
func NewChunkerPool(delim []byte, opts ...Option) (*ChunkerPool, error) {
	// Validate delimiter and options up front by constructing a chunker.
	if _, err := NewChunker(NewBytesSource(nil), delim, opts...); err != nil {
		return nil, err
	}

	return &ChunkerPool{
		delim: delim,
		opts:  opts,
	}, nil
}

// Get retrieves a Chunker from the pool, or creates one if the pool is
// empty. The chunker is reset onto src and ready to use.
func (p *ChunkerPool) Get(src Source) (*Chunker, error) {
	if v := p.pool.Get(); v != nil {
		c := v.(*Chunker)
		c.Reset(src)

		return c, nil
	}

	return NewChunker(src, p.delim, p.opts...)
}

// Put returns a Chunker to the pool. It must not be used afterwards.
func (p *ChunkerPool) Put(c *Chunker) {
	// Drop the source so the pool does not keep it alive.
	c.src = nil
	p.pool.Put(c)
}
