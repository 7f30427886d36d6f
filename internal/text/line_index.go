package text

import (
	"errors"
	"fmt"
	"slices"
)

// LineIndex maps byte offsets to line/column locations over a source buffer.
// Line numbers are 0-based and columns count bytes. Line terminators ("\n"
// or "\r\n") belong to the line they end.
type LineIndex struct {
	src        []byte
	lineStarts []ByteOffset
}

var errNilLineIndex = errors.New("nil LineIndex")

// NewLineIndex builds an index over src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []ByteOffset{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return &LineIndex{
		src:        src,
		lineStarts: starts,
	}
}

// LineCount returns the number of logical lines in the source.
func (li *LineIndex) LineCount() int {
	if li == nil {
		return 0
	}
	return len(li.lineStarts)
}

// LineSpan returns the span of line's content, excluding its terminator.
func (li *LineIndex) LineSpan(line int) (Span, error) {
	if li == nil {
		return Span{}, errNilLineIndex
	}
	if line < 0 || line >= li.LineCount() {
		return Span{}, fmt.Errorf("line out of range: %d", line)
	}
	start, _, contentEnd := li.lineBounds(line)
	return Span{Start: start, End: contentEnd}, nil
}

// OffsetToPoint converts a byte offset to a byte-based point.
func (li *LineIndex) OffsetToPoint(off ByteOffset) (Point, error) {
	if li == nil {
		return Point{}, errNilLineIndex
	}
	if !off.IsValid() || off > ByteOffset(len(li.src)) {
		return Point{}, fmt.Errorf("offset out of range: %d", off)
	}

	line := li.lineForOffset(off)
	return Point{
		Line:   line,
		Column: int(off - li.lineStarts[line]),
	}, nil
}

func (li *LineIndex) lineForOffset(off ByteOffset) int {
	// largest i such that lineStarts[i] <= off
	i, found := slices.BinarySearch(li.lineStarts, off)
	if found {
		return i
	}
	return i - 1
}

func (li *LineIndex) lineBounds(line int) (start ByteOffset, nextStart ByteOffset, contentEnd ByteOffset) {
	start = li.lineStarts[line]
	if line+1 < len(li.lineStarts) {
		nextStart = li.lineStarts[line+1]
	} else {
		nextStart = ByteOffset(len(li.src))
	}
	contentEnd = nextStart
	if contentEnd > start && li.src[contentEnd-1] == '\n' {
		contentEnd--
		if contentEnd > start && li.src[contentEnd-1] == '\r' {
			contentEnd--
		}
	}
	return start, nextStart, contentEnd
}
