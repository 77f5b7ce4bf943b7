// Package fromback addresses positions and ranges in a sequence relative to
// either of its ends, and resolves them to the plain forward bounds Go's
// native indexing and slicing understand.
//
// A position two from the front is Front(2); three from the back is Back(3).
// The same positions written in the compact pattern syntax are "2" and "^3",
// and a range between them is "2..^3". Resolving that range against a
// sequence of length 10 yields the half-open bounds (2, 7), ready for
// s[2:7].
package fromback

import "strconv"

// An Index addresses a single position in a sequence, counting from the
// front or from the back.
//
// The zero value addresses the front of the sequence, same as Front(0).
type Index struct {
	offset   int
	fromBack bool
}

// Front returns the Index counting offset positions forward from the start
// of a sequence. Front(0) is the first element.
//
// Front panics if offset is negative; direction is carried by the
// constructor, never by the sign.
func Front(offset int) Index {
	if offset < 0 {
		panic("fromback: negative index offset")
	}
	return Index{offset: offset}
}

// Back returns the Index counting offset positions backward from the end of
// a sequence. Back(1) is the last element. Back(0) is one past it, which
// makes it usable only as a range end.
//
// Back panics if offset is negative; direction is carried by the
// constructor, never by the sign.
func Back(offset int) Index {
	if offset < 0 {
		panic("fromback: negative index offset")
	}
	return Index{offset: offset, fromBack: true}
}

// Offset returns the distance from the index's anchor.
func (ix Index) Offset() int {
	return ix.offset
}

// FromBack reports whether the index counts from the back of the sequence.
func (ix Index) FromBack() bool {
	return ix.fromBack
}

// String renders the index in the compact syntax accepted by ParseIndex:
// "3" counts from the front, "^3" from the back.
func (ix Index) String() string {
	if ix.fromBack {
		return "^" + strconv.Itoa(ix.offset)
	}
	return strconv.Itoa(ix.offset)
}
