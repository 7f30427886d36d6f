package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kpumuk/urispan/internal/text"
)

// input is one URI to inspect together with where it came from.
type input struct {
	text   string
	source string          // file path, "<stdin>" or "arg"
	index  *text.LineIndex // nil for command-line arguments
	base   text.ByteOffset // offset of text within the source
	arg    int
}

// location renders off, a byte offset within the URI, as a source location.
func (in input) location(off text.ByteOffset) string {
	if in.index == nil {
		return fmt.Sprintf("arg %d:%d", in.arg+1, off+1)
	}
	p, err := in.index.OffsetToPoint(in.base + off)
	if err != nil {
		return in.source
	}
	return fmt.Sprintf("%s:%s", in.source, p)
}

func argInputs(args []string) []input {
	out := make([]input, 0, len(args))
	for i, a := range args {
		out = append(out, input{text: a, source: "arg", arg: i})
	}
	return out
}

func readInputFile(path string) ([]input, error) {
	//nolint:gosec // CLI intentionally reads user-provided file paths.
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lineInputs(path, src), nil
}

func readInputStream(r io.Reader) ([]input, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lineInputs("<stdin>", src), nil
}

// lineInputs returns one input per line of src. Surrounding blanks are
// trimmed; empty lines and lines starting with '#' are skipped.
func lineInputs(source string, src []byte) []input {
	li := text.NewLineIndex(src)
	var out []input
	for line := range li.LineCount() {
		s, err := li.LineSpan(line)
		if err != nil {
			continue
		}
		for s.Start < s.End && isBlank(src[s.Start]) {
			s.Start++
		}
		for s.End > s.Start && isBlank(src[s.End-1]) {
			s.End--
		}
		if s.IsEmpty() || src[s.Start] == '#' {
			continue
		}
		out = append(out, input{
			text:   string(s.Slice(src)),
			source: source,
			index:  li,
			base:   s.Start,
		})
	}
	return out
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}
