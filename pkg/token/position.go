// Package token provides source positions, spans and comment scanning for
// ESTree-shaped syntax trees.
package token

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span represents a range in source code.
// Offsets are half-open: [Start.Offset, End.Offset).
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Encloses returns true if other lies entirely within s.
func (s Span) Encloses(other Span) bool {
	return other.Start.Offset >= s.Start.Offset && other.End.Offset <= s.End.Offset
}

// Same reports positional identity: both spans cover the same byte range.
// Line and column are ignored because different producers may disagree on them.
func (s Span) Same(other Span) bool {
	return s.Start.Offset == other.Start.Offset && s.End.Offset == other.End.Offset
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Text returns the slice of src covered by the span, or "" when the span
// falls outside src.
func (s Span) Text(src string) string {
	if s.Start.Offset < 0 || s.End.Offset > len(src) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return src[s.Start.Offset:s.End.Offset]
}

// LineIndex maps ESTree source offsets to positions. acorn, espree and
// typescript-estree count offsets in UTF-16 code units, so Position takes
// offsets in those units. The returned Offset is a byte offset into the
// indexed text and Column counts UTF-16 units, as ESTree loc does.
type LineIndex struct {
	src   string
	lines []int // byte offset of the first byte of each line
	units []int // UTF-16 offset of each line start; nil for ASCII text
	size  int   // length of src in UTF-16 units
}

// NewLineIndex builds a line index for src.
func NewLineIndex(src string) *LineIndex {
	x := &LineIndex{src: src, lines: []int{0}, size: len(src)}
	ascii := true
	for i := 0; i < len(src); i++ {
		switch {
		case src[i] == '\n':
			x.lines = append(x.lines, i+1)
		case src[i] >= utf8.RuneSelf:
			ascii = false
		}
	}
	if ascii {
		return x
	}

	x.units = make([]int, 1, len(x.lines))
	unit := 0
	for _, r := range src {
		unit += utf16.RuneLen(r)
		if r == '\n' {
			x.units = append(x.units, unit)
		}
	}
	x.size = unit
	return x
}

// Position returns the position of the given UTF-16 offset.
// Offsets past the end of the source are clamped.
func (x *LineIndex) Position(offset int) Position {
	if x == nil {
		return Position{Offset: offset}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > x.size {
		offset = x.size
	}
	starts := x.lines
	if x.units != nil {
		starts = x.units
	}
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	col := offset - starts[line]

	b := x.lines[line] + col
	if x.units != nil {
		b = x.lines[line]
		for n := 0; n < col && b < len(x.src); {
			r, w := utf8.DecodeRuneInString(x.src[b:])
			n += utf16.RuneLen(r)
			b += w
		}
	}
	return Position{
		Line:   line + 1,
		Column: col + 1,
		Offset: b,
	}
}

// Span returns the span between two UTF-16 offsets.
func (x *LineIndex) Span(start, end int) Span {
	return Span{Start: x.Position(start), End: x.Position(end)}
}
