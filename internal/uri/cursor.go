package uri

import "github.com/kpumuk/urispan/internal/text"

// Cursor is a forward-only position within a Buffer. Each relocation owns
// its cursor; cursors are not safe for concurrent use.
type Cursor struct {
	buf  *Buffer
	pos  text.ByteOffset
	kind Kind
}

// NewCursor returns a cursor at the start of buf.
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current offset.
func (c *Cursor) Pos() text.ByteOffset { return c.pos }

// Remaining returns the number of bytes after the current offset.
func (c *Cursor) Remaining() int {
	return c.buf.Len() - int(c.pos)
}

// Take consumes exactly n bytes and returns the span covering them. If fewer
// than n bytes remain the cursor does not move.
func (c *Cursor) Take(n int) (Span, error) {
	if n < 0 || n > c.Remaining() {
		return Span{}, newError(ErrBufferExhausted, c.kind, c.pos, "need %d bytes, have %d", n, c.Remaining())
	}
	s := Span{buf: c.buf, rng: text.SpanAt(c.pos, n)}
	c.pos = s.rng.End
	return s, nil
}

// CopyPart consumes len(ref) bytes from c, relocating a standalone string
// with no further structure onto c's buffer.
func CopyPart(ref string, c *Cursor) (Span, error) {
	return c.Take(len(ref))
}

// Skip consumes one delim byte. It fails without moving when the buffer is
// exhausted or the current byte differs.
func (c *Cursor) Skip(delim byte) error {
	if c.Remaining() < 1 {
		return newError(ErrBufferExhausted, c.kind, c.pos, "need delimiter %q", delim)
	}
	if got := c.buf.data[c.pos]; got != delim {
		return newError(ErrMissingDelimiter, c.kind, c.pos, "want %q, got %q", delim, got)
	}
	c.pos++
	return nil
}

// SkipIf consumes one delim byte if it is next and reports whether it did.
func (c *Cursor) SkipIf(delim byte) bool {
	if c.Remaining() > 0 && c.buf.data[c.pos] == delim {
		c.pos++
		return true
	}
	return false
}

// SkipRun consumes every consecutive delim byte and returns how many it skipped.
func (c *Cursor) SkipRun(delim byte) int {
	n := 0
	for c.SkipIf(delim) {
		n++
	}
	return n
}
