package pool

import (
	"bytes"
	"sync"
)

// BufferPool recycles byte buffers used to encode artifacts before they are written.
type BufferPool struct {
	pool        sync.Pool
	maxRetained int
}

// NewBufferPool creates a pool whose new buffers start with the given capacity.
// Buffers that grew beyond maxRetained bytes are dropped instead of being reused.
func NewBufferPool(size, maxRetained int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
		maxRetained: maxRetained,
	}
}

// Get retrieves an empty buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.pool.Get().(*bytes.Buffer)
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil || (bp.maxRetained > 0 && buf.Cap() > bp.maxRetained) {
		return
	}
	buf.Reset()
	bp.pool.Put(buf)
}
