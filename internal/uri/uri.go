package uri

import "github.com/kpumuk/urispan/internal/text"

// URI is a URI value: one owned buffer plus the component spans into it.
// The zero URI is empty and has no components.
type URI struct {
	buf   *Buffer
	parts Parts
}

// Parse copies s into a new buffer and splits it into components.
func Parse(s string) URI {
	return FromBuffer(NewBuffer(s))
}

// FromBuffer splits buf into components. The URI takes buf as its storage.
func FromBuffer(buf *Buffer) URI {
	return URI{buf: buf, parts: Split(buf)}
}

// Buffer returns the storage backing u.
func (u URI) Buffer() *Buffer { return u.buf }

// Parts returns the component spans of u.
func (u URI) Parts() Parts { return u.parts }

func (u URI) String() string { return u.buf.String() }

// Part returns the text of component k and whether it is present.
func (u URI) Part(k Kind) (string, bool) {
	p := u.parts.Get(k)
	return p.Text(), p.Present()
}

// Scheme returns the scheme and whether it is present.
func (u URI) Scheme() (string, bool) { return u.Part(KindScheme) }

// UserInfo returns the user-info and whether it is present.
func (u URI) UserInfo() (string, bool) { return u.Part(KindUserInfo) }

// Host returns the host and whether it is present.
func (u URI) Host() (string, bool) { return u.Part(KindHost) }

// Port returns the port and whether it is present.
func (u URI) Port() (string, bool) { return u.Part(KindPort) }

// Path returns the path and whether it is present.
func (u URI) Path() (string, bool) { return u.Part(KindPath) }

// Query returns the query and whether it is present.
func (u URI) Query() (string, bool) { return u.Part(KindQuery) }

// Fragment returns the fragment and whether it is present.
func (u URI) Fragment() (string, bool) { return u.Part(KindFragment) }

// Rebase returns u backed by buf, relocating its spans without re-splitting.
// buf must hold the same bytes as u's buffer.
func (u URI) Rebase(buf *Buffer) (URI, error) {
	parts, err := Relocate(buf, u.parts)
	if err != nil {
		return URI{}, err
	}
	return URI{buf: buf, parts: parts}, nil
}

// Clone copies u into fresh storage. Spans are relocated when the shape
// allows it; shapes the relocation walk cannot follow (an authority without
// a scheme, or an empty host followed by a '/' path) are split again.
func (u URI) Clone() URI {
	buf := u.buf.Copy()
	if c, err := u.Rebase(buf); err == nil {
		return c
	}
	return FromBuffer(buf)
}

// WithPart returns a new URI with component k's text replaced by value.
// The result is split again, so a value containing delimiters may change
// the component layout.
func (u URI) WithPart(k Kind, value string) (URI, error) {
	s, ok := u.parts.Get(k).Span()
	if !ok {
		return URI{}, newError(ErrAbsentPart, k, 0, "cannot replace")
	}
	out, err := text.ApplyEdits(u.buf.data, text.ByteEdit{Span: s.Range(), NewText: []byte(value)})
	if err != nil {
		return URI{}, err
	}
	return FromBuffer(&Buffer{data: out}), nil
}
