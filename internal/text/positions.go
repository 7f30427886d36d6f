// Package text defines byte offsets, half-open spans, and line/column points
// over immutable byte buffers.
package text

import "fmt"

// ByteOffset is a byte index into a source buffer.
type ByteOffset int

// IsValid reports whether the offset is non-negative.
func (o ByteOffset) IsValid() bool {
	return o >= 0
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

// SpanAt returns the span of n bytes starting at start.
func SpanAt(start ByteOffset, n int) Span {
	return Span{Start: start, End: start + ByteOffset(n)}
}

// Validate reports an error if the span is invalid.
func (s Span) Validate() error {
	if !s.Start.IsValid() {
		return fmt.Errorf("invalid span start: %d", s.Start)
	}
	if !s.End.IsValid() {
		return fmt.Errorf("invalid span end: %d", s.End)
	}
	if s.End < s.Start {
		return fmt.Errorf("invalid span bounds: end (%d) < start (%d)", s.End, s.Start)
	}
	return nil
}

// ValidateWithin reports an error if the span is invalid or extends past srcLen.
func (s Span) ValidateWithin(srcLen ByteOffset) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.End > srcLen {
		return fmt.Errorf("span %s exceeds source length %d", s, srcLen)
	}
	return nil
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
// For invalid spans, the result is undefined.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// Slice returns the bytes of src covered by the span.
// The span must lie within src.
func (s Span) Slice(src []byte) []byte {
	return src[s.Start:s.End:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Point is a byte-based source location.
type Point struct {
	Line   int // 0-based
	Column int // byte column
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}
