package fromback

import "strings"

// A Range selects a contiguous span of a sequence. Each bound is optional
// and may be anchored at either end of the sequence; the end bound may
// additionally be marked inclusive.
//
// The zero value selects the whole sequence, same as All().
type Range struct {
	start, end       Index
	hasStart, hasEnd bool
	inclusive        bool
}

// All returns the range selecting a whole sequence ("..").
func All() Range {
	return Range{}
}

// From returns the range starting at start and open on the end side
// ("start..").
func From(start Index) Range {
	return Range{start: start, hasStart: true}
}

// To returns the range open on the start side and stopping before end
// ("..end").
func To(end Index) Range {
	return Range{end: end, hasEnd: true}
}

// Through returns the range open on the start side and stopping after end
// ("..=end").
func Through(end Index) Range {
	return Range{end: end, hasEnd: true, inclusive: true}
}

// From returns a copy of the range with its start bound replaced.
func (r Range) From(start Index) Range {
	r.start = start
	r.hasStart = true
	return r
}

// To returns a copy of the range with its end bound replaced by an exclusive
// end, as in From(Front(2)).To(Back(3)).
func (r Range) To(end Index) Range {
	r.end = end
	r.hasEnd = true
	r.inclusive = false
	return r
}

// Through returns a copy of the range with its end bound replaced by an
// inclusive end, as in From(Front(2)).Through(Back(3)).
func (r Range) Through(end Index) Range {
	r.end = end
	r.hasEnd = true
	r.inclusive = true
	return r
}

// Start returns the start bound; ok is false when the range is open on the
// start side.
func (r Range) Start() (start Index, ok bool) {
	return r.start, r.hasStart
}

// End returns the end bound; ok is false when the range is open on the end
// side.
func (r Range) End() (end Index, ok bool) {
	return r.end, r.hasEnd
}

// Inclusive reports whether the end bound is inclusive.
func (r Range) Inclusive() bool {
	return r.inclusive
}

// String renders the range in the compact syntax accepted by Parse, such as
// "2..^3", "..=7" or "..".
func (r Range) String() string {
	var b strings.Builder
	if r.hasStart {
		b.WriteString(r.start.String())
	}
	b.WriteString("..")
	if r.inclusive {
		b.WriteByte('=')
	}
	if r.hasEnd {
		b.WriteString(r.end.String())
	}
	return b.String()
}
