package handler

import (
	"bytes"
	"sync"
)

// bufferPool recycles the buffers respondJSON encodes into. Every response
// in this service fits comfortably in the preallocated 512 bytes except the
// journal pages, which grow the buffer once and keep the larger backing
// array for the next render.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// getBuffer takes a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf and hands it back
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
