package text

import (
	"cmp"
	"fmt"
	"slices"
)

// ByteEdit replaces the bytes in Span with NewText.
type ByteEdit struct {
	Span    Span
	NewText []byte
}

// ApplyEdits applies non-overlapping byte edits and returns a new buffer.
// Edits may be provided in any order; touching spans are allowed. src is
// never modified and the result never aliases it.
func ApplyEdits(src []byte, edits ...ByteEdit) ([]byte, error) {
	sorted, err := sortedEdits(ByteOffset(len(src)), edits)
	if err != nil {
		return nil, err
	}

	size := len(src)
	for _, e := range sorted {
		size += len(e.NewText) - e.Span.Len()
	}

	out := make([]byte, 0, size)
	cursor := ByteOffset(0)
	for _, e := range sorted {
		out = append(out, src[cursor:e.Span.Start]...)
		out = append(out, e.NewText...)
		cursor = e.Span.End
	}
	return append(out, src[cursor:]...), nil
}

func sortedEdits(srcLen ByteOffset, edits []ByteEdit) ([]ByteEdit, error) {
	for _, e := range edits {
		if err := e.Span.ValidateWithin(srcLen); err != nil {
			return nil, fmt.Errorf("invalid edit span %s: %w", e.Span, err)
		}
	}

	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b ByteEdit) int {
		if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Span.End, b.Span.End)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Span.Start < sorted[i-1].Span.End {
			return nil, fmt.Errorf("overlapping edits: %s and %s", sorted[i-1].Span, sorted[i].Span)
		}
	}
	return sorted, nil
}
