package codegen

import (
	"bytes"
	"sync"
)

const renderBufferSize = 16 * 1024

var renderBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, renderBufferSize))
	},
}

// getRenderBuffer returns an empty buffer from the pool.
func getRenderBuffer() *bytes.Buffer {
	buf := renderBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putRenderBuffer returns a buffer to the pool.
func putRenderBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	// Don't pool oversized buffers
	if buf.Cap() > 1<<20 {
		return
	}
	renderBufferPool.Put(buf)
}
