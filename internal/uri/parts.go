package uri

import (
	"fmt"
	"strings"

	"github.com/kpumuk/urispan/internal/text"
)

// Kind identifies a URI component. Kinds are ordered the way components
// appear in a URI.
type Kind uint8

// Kind values in component order. KindNone is not a component.
const (
	KindNone Kind = iota
	KindScheme
	KindUserInfo
	KindHost
	KindPort
	KindPath
	KindQuery
	KindFragment
)

var kindNames = [...]string{
	KindNone:     "uri",
	KindScheme:   "scheme",
	KindUserInfo: "user-info",
	KindHost:     "host",
	KindPort:     "port",
	KindPath:     "path",
	KindQuery:    "query",
	KindFragment: "fragment",
}

var allKinds = [...]Kind{KindScheme, KindUserInfo, KindHost, KindPort, KindPath, KindQuery, KindFragment}

// Kinds returns every component kind in component order.
func Kinds() []Kind {
	return allKinds[:]
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind resolves a component name. "userinfo" and "user_info" are
// accepted for KindUserInfo.
func ParseKind(name string) (Kind, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "userinfo", "user_info":
		return KindUserInfo, nil
	default:
		for _, k := range allKinds {
			if kindNames[k] == n {
				return k, nil
			}
		}
	}
	return KindNone, fmt.Errorf("unknown URI component %q", name)
}

// Part is an optional component span. The zero Part is absent; a present
// Part may still be empty.
type Part struct {
	span Span
	ok   bool
}

// Some returns a present Part covering s.
func Some(s Span) Part {
	return Part{span: s, ok: true}
}

// Present reports whether the component exists.
func (p Part) Present() bool { return p.ok }

// Span returns the component span and whether the component exists.
func (p Part) Span() (Span, bool) { return p.span, p.ok }

// Len returns the component length, or 0 when absent.
func (p Part) Len() int { return p.span.Len() }

// Text returns the component text, or "" when absent.
func (p Part) Text() string { return p.span.Text() }

// Parts is the component structure of a URI: seven optional spans in the
// fixed order scheme, user-info, host, port, path, query, fragment.
type Parts struct {
	Scheme   Part
	UserInfo Part
	Host     Part
	Port     Part
	Path     Part
	Query    Part
	Fragment Part
}

// Get returns the Part for k. KindNone and unknown kinds yield an absent Part.
func (p Parts) Get(k Kind) Part {
	if slot := p.slot(k); slot != nil {
		return *slot
	}
	return Part{}
}

func (p *Parts) slot(k Kind) *Part {
	switch k {
	case KindScheme:
		return &p.Scheme
	case KindUserInfo:
		return &p.UserInfo
	case KindHost:
		return &p.Host
	case KindPort:
		return &p.Port
	case KindPath:
		return &p.Path
	case KindQuery:
		return &p.Query
	case KindFragment:
		return &p.Fragment
	default:
		return nil
	}
}

// Present returns the kinds of the present components in component order.
func (p Parts) Present() []Kind {
	var out []Kind
	for _, k := range allKinds {
		if p.Get(k).Present() {
			out = append(out, k)
		}
	}
	return out
}

// EqualText reports whether p and other have the same presence pattern and
// the same component text, regardless of which buffers they point into.
func (p Parts) EqualText(other Parts) bool {
	for _, k := range allKinds {
		a, b := p.Get(k), other.Get(k)
		if a.Present() != b.Present() || a.Text() != b.Text() {
			return false
		}
	}
	return true
}

// Validate checks that every present span points into buf, lies within it,
// and that spans follow component order without overlapping.
func (p Parts) Validate(buf *Buffer) error {
	prevEnd := text.ByteOffset(0)
	for _, k := range allKinds {
		s, ok := p.Get(k).Span()
		if !ok {
			continue
		}
		if !s.In(buf) {
			return newError(ErrForeignSpan, k, s.Offset(), "span %s points into another buffer", s.Range())
		}
		if err := s.Range().ValidateWithin(text.ByteOffset(buf.Len())); err != nil {
			return newError(ErrSpanBounds, k, s.Offset(), "%v", err)
		}
		if s.Range().Start < prevEnd {
			return newError(ErrSpanOrder, k, s.Offset(), "span %s starts before previous component end %d", s.Range(), prevEnd)
		}
		prevEnd = s.Range().End
	}
	return nil
}

// Reassemble rebuilds URI text from the components using canonical
// delimiters. For parts produced by Split, the result equals the source.
func (p Parts) Reassemble() string {
	var b strings.Builder
	if p.Scheme.Present() {
		b.WriteString(p.Scheme.Text())
		b.WriteByte(':')
	}
	if p.Host.Present() {
		b.WriteString("//")
	}
	if p.UserInfo.Present() {
		b.WriteString(p.UserInfo.Text())
		b.WriteByte('@')
	}
	b.WriteString(p.Host.Text())
	if p.Port.Present() {
		b.WriteByte(':')
		b.WriteString(p.Port.Text())
	}
	b.WriteString(p.Path.Text())
	if p.Query.Present() {
		b.WriteByte('?')
		b.WriteString(p.Query.Text())
	}
	if p.Fragment.Present() {
		b.WriteByte('#')
		b.WriteString(p.Fragment.Text())
	}
	return b.String()
}
