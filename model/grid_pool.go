package model

import "sync"

// BufferPool recycles scratch cell buffers for memory efficiency, so the
// fresh-buffer-per-step invariant doesn't cost an allocation every
// generation.
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return []Cell(nil)
			},
		},
	}
}

// Get retrieves a buffer of n² cells from the pool, growing it if needed.
func (p *BufferPool) Get(n int) []Cell {
	buf := p.pool.Get().([]Cell)
	if cap(buf) < n*n {
		return make([]Cell, n*n)
	}
	return buf[:n*n]
}

// Put returns a buffer to the pool, clearing its state.
func (p *BufferPool) Put(buf []Cell) {
	// Clear the buffer before returning to pool
	for i := range buf {
		buf[i] = Dead
	}
	p.pool.Put(buf)
}
