package buffer

import "fmt"

// Range is an unordered pair of positions. Start may come after End; use
// Normalize before slicing.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a new Range from two positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start.String(), r.End.String())
}

// Normalize returns the range with Start <= End.
func (r Range) Normalize() Range {
	return Range{Start: Min(r.Start, r.End), End: Max(r.Start, r.End)}
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Contains returns true if p lies in the normalized [Start, End) span.
func (r Range) Contains(p Position) bool {
	n := r.Normalize()
	return p.Compare(n.Start) >= 0 && p.Compare(n.End) < 0
}
