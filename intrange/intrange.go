// Package intrange normalizes index ranges with arbitrary endpoint bounds
// into clamped half-open intervals.
//
// SegmentTree and CumSum both accept ranges whose endpoints may be
// inclusive, exclusive or absent; the normalization lives here once so the
// two structures cannot drift apart.
package intrange

type boundKind int

const (
	included boundKind = iota
	excluded
	unbounded
)

// Bound is one endpoint of a Range.
type Bound struct {
	kind  boundKind
	value int
}

// Included returns a bound that contains x.
func Included(x int) Bound {
	return Bound{kind: included, value: x}
}

// Excluded returns a bound that does not contain x.
func Excluded(x int) Bound {
	return Bound{kind: excluded, value: x}
}

// Unbounded returns an absent bound.
func Unbounded() Bound {
	return Bound{kind: unbounded}
}

// Range is an index interval described by two endpoint bounds.
// The zero value is the unbounded range.
type Range struct {
	Start Bound
	End   Bound
}

// New returns the range with the given endpoint bounds.
func New(start, end Bound) Range {
	return Range{Start: start, End: end}
}

// Span returns the half-open range [start, end).
func Span(start, end int) Range {
	return Range{Start: Included(start), End: Excluded(end)}
}

// Closed returns the closed range [start, end].
func Closed(start, end int) Range {
	return Range{Start: Included(start), End: Included(end)}
}

// From returns the range [start, ...).
func From(start int) Range {
	return Range{Start: Included(start), End: Unbounded()}
}

// To returns the range [0, end).
func To(end int) Range {
	return Range{Start: Unbounded(), End: Excluded(end)}
}

// All returns the unbounded range.
func All() Range {
	return Range{Start: Unbounded(), End: Unbounded()}
}

// Clamp resolves r to a half-open interval [start, end) clamped into
// [0, n]. The resolved interval is empty iff end <= start, so callers need
// no further bounds checks before indexing a length-n prefix array.
func (r Range) Clamp(n int) (start, end int) {
	switch r.Start.kind {
	case included:
		start = r.Start.value
	case excluded:
		start = r.Start.value + 1
	case unbounded:
		start = 0
	}
	if start < 0 {
		start = 0
	}

	switch r.End.kind {
	case included:
		end = r.End.value + 1
	case excluded:
		end = r.End.value
	case unbounded:
		end = n
	}
	if end > n {
		end = n
	}

	return start, end
}
