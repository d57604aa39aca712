package model

import "sync"

// BufferToPool returns a buffer to the pool for reuse
func BufferToPool(buf *ColorBuffer, pool *ColorBufferPool) {
	if pool == nil || buf == nil {
		return
	}

	pool.Put(buf)
}

// ColorBufferPool recycles frame buffers between generations
type ColorBufferPool struct {
	pool sync.Pool
}

func NewColorBufferPool() *ColorBufferPool {
	return &ColorBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &ColorBuffer{}
			},
		},
	}
}

// Get retrieves a buffer from the pool, resized to the given dimensions
func (p *ColorBufferPool) Get(width, height int) *ColorBuffer {
	b := p.pool.Get().(*ColorBuffer)
	n := width * height * 3
	if cap(b.Pix) < n {
		b.Pix = make([]float64, n)
	}
	b.Pix = b.Pix[:n]
	b.Width, b.Height = width, height
	return b
}

// Put returns a buffer to the pool
func (p *ColorBufferPool) Put(b *ColorBuffer) {
	p.pool.Put(b)
}
