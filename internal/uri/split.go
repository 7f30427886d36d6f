package uri

import (
	"bytes"

	"github.com/kpumuk/urispan/internal/text"
)

// Split divides buf into components following the generic syntax of
// RFC 3986 appendix B. It never fails and performs no validation: every
// byte of buf ends up in a component or a delimiter. The path is always
// present, possibly empty.
//
// The scheme must start with a letter and contain only letters, digits,
// '+', '-' and '.', otherwise the text before ':' is part of the path.
// User-info extends to the last '@' of the authority. The port follows the
// last ':' of the authority, or the ':' right after a bracketed IP literal.
func Split(buf *Buffer) Parts {
	if buf == nil {
		return Parts{}
	}
	s := splitter{buf: buf, src: buf.data, end: len(buf.data)}
	s.run()
	return s.parts
}

type splitter struct {
	buf   *Buffer
	src   []byte
	pos   int
	end   int // end of scheme/authority/path region
	parts Parts
}

func (s *splitter) run() {
	if i := bytes.IndexByte(s.src, '#'); i >= 0 {
		s.set(KindFragment, i+1, len(s.src))
		s.end = i
	}
	if i := bytes.IndexByte(s.src[:s.end], '?'); i >= 0 {
		s.set(KindQuery, i+1, s.end)
		s.end = i
	}

	s.scanScheme()
	if bytes.HasPrefix(s.src[s.pos:s.end], []byte("//")) {
		s.scanAuthority()
	}
	s.set(KindPath, s.pos, s.end)
}

func (s *splitter) scanScheme() {
	if s.end == 0 || !isAlpha(s.src[0]) {
		return
	}
	i := 1
	for i < s.end && isSchemePart(s.src[i]) {
		i++
	}
	if i < s.end && s.src[i] == ':' {
		s.set(KindScheme, 0, i)
		s.pos = i + 1
	}
}

func (s *splitter) scanAuthority() {
	start := s.pos + 2
	end := s.end
	if i := bytes.IndexByte(s.src[start:end], '/'); i >= 0 {
		end = start + i
	}

	host := start
	if i := bytes.LastIndexByte(s.src[start:end], '@'); i >= 0 {
		s.set(KindUserInfo, start, start+i)
		host = start + i + 1
	}

	hostEnd := end
	switch {
	case host < end && s.src[host] == '[':
		if i := bytes.IndexByte(s.src[host:end], ']'); i >= 0 {
			closing := host + i + 1
			if closing < end && s.src[closing] == ':' {
				hostEnd = closing
			}
		}
	default:
		if i := bytes.LastIndexByte(s.src[host:end], ':'); i >= 0 {
			hostEnd = host + i
		}
	}
	s.set(KindHost, host, hostEnd)
	if hostEnd < end {
		s.set(KindPort, hostEnd+1, end)
	}
	s.pos = end
}

func (s *splitter) set(k Kind, start, end int) {
	*s.parts.slot(k) = Some(Span{
		buf: s.buf,
		rng: text.Span{Start: text.ByteOffset(start), End: text.ByteOffset(end)},
	})
}

func isAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isSchemePart(b byte) bool {
	return isAlpha(b) || ('0' <= b && b <= '9') || b == '+' || b == '-' || b == '.'
}
