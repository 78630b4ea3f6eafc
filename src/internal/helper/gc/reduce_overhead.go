// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
// Buffers that were not obtained from a bytebufferpool are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// New returns an empty, independent buffer pool.
func New() Pool { return &pool{p: &bytebufferpool.Pool{}} }

// Default is the default buffer pool used by the template renderer and the
// structured logger.
//
// Example usage for rendering a template:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	if err := tmpl.Execute(buf, data); err != nil {
//		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
//	}
//
//	return buf.String(), nil
//
// Callers must copy data out of the buffer (String does) before putting it back.
var Default Pool = New()

// Capture runs fn against a pooled buffer and returns what fn wrote.
// The buffer is returned to pool p even when fn fails; on error the partial
// content is discarded.
//
// Parameters:
//   - p: Pool to borrow from (nil means [Default])
//   - fn: Function writing into the buffer
//
// Returns:
//   - string: Copy of the buffer content
//   - error: Error returned by fn
func Capture(p Pool, fn func(w Buffer) error) (string, error) {
	if p == nil {
		p = Default
	}

	buf := p.Get()
	defer func() {
		buf.Reset()
		p.Put(buf)
	}()

	if err := fn(buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
