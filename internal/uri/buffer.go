// Package uri stores a URI as one immutable byte buffer plus borrowed
// component spans, and relocates those spans when the buffer is copied.
package uri

import (
	"bytes"
	"fmt"

	"github.com/kpumuk/urispan/internal/text"
)

// Buffer is immutable byte storage backing a URI value. A *Buffer is its
// identity: two buffers with equal content are still distinct owners.
type Buffer struct {
	data []byte
}

// NewBuffer copies s into a new buffer.
func NewBuffer(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// NewBufferBytes copies b into a new buffer.
func NewBufferBytes(b []byte) *Buffer {
	return &Buffer{data: append([]byte{}, b...)}
}

// Copy returns a new buffer with equal content in fresh storage.
func (b *Buffer) Copy() *Buffer {
	if b == nil {
		return NewBufferBytes(nil)
	}
	return NewBufferBytes(b.data)
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns a copy of the buffer content.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return bytes.Clone(b.data)
}

func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Span is a borrowed view of a byte range within one Buffer.
type Span struct {
	buf *Buffer
	rng text.Span
}

// NewSpan returns a span over rng in buf, checking that rng lies within it.
func NewSpan(buf *Buffer, rng text.Span) (Span, error) {
	if buf == nil {
		return Span{}, fmt.Errorf("span %s: nil buffer", rng)
	}
	if err := rng.ValidateWithin(text.ByteOffset(buf.Len())); err != nil {
		return Span{}, err
	}
	return Span{buf: buf, rng: rng}, nil
}

// Buffer returns the buffer the span points into.
func (s Span) Buffer() *Buffer { return s.buf }

// Range returns the byte range of the span within its buffer.
func (s Span) Range() text.Span { return s.rng }

// Offset returns the start offset of the span.
func (s Span) Offset() text.ByteOffset { return s.rng.Start }

// Len returns the span length in bytes.
func (s Span) Len() int { return s.rng.Len() }

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool { return s.rng.IsEmpty() }

// In reports whether the span points into buf.
func (s Span) In(buf *Buffer) bool { return s.buf != nil && s.buf == buf }

// Bytes returns the spanned bytes. The result aliases the buffer and must
// not be modified.
func (s Span) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.rng.Slice(s.buf.data)
}

// Text returns the spanned bytes as a string.
func (s Span) Text() string {
	return string(s.Bytes())
}

func (s Span) String() string {
	return fmt.Sprintf("%s%q", s.rng, s.Text())
}
