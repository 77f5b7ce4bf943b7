package fromback

import "github.com/pkg/errors"

// Resolve converts the index to the concrete forward position it addresses
// in a sequence of the given length: a from-front index resolves to its
// offset unchanged, a from-back index to length minus its offset.
//
// The resolved position must land in [0, length]. Position length is one
// past the last element and is meaningful only as a range end; element
// access additionally rejects it (see At). Anything outside [0, length]
// reports ErrOutOfRange. The subtraction is checked, so a from-back offset
// exceeding length is an error, never a wrapped-around position.
//
// Resolve panics if length is negative; sequence lengths come from len().
func (ix Index) Resolve(length int) (int, error) {
	if length < 0 {
		panic("fromback: negative sequence length")
	}
	pos := ix.position(length)
	if pos < 0 || pos > length {
		return 0, errors.Wrapf(ErrOutOfRange, "index %s with length %d", ix, length)
	}
	return pos, nil
}

// Resolve converts the range to concrete forward half-open bounds for a
// sequence of the given length, ready for native slicing as s[start:end].
//
// An absent start resolves to 0 and an absent end to length. An inclusive
// end bound resolves one past its position, preserving the half-open
// convention. Successful resolution guarantees
// 0 <= start <= end <= length; any violation, including a range that ends
// before it starts, reports ErrOutOfRange exactly where native slicing
// would fail.
//
// Resolve is a pure function of the range and length; it never inspects or
// touches the sequence itself.
//
// Resolve panics if length is negative; sequence lengths come from len().
func (r Range) Resolve(length int) (start, end int, err error) {
	if length < 0 {
		panic("fromback: negative sequence length")
	}

	start = 0
	if r.hasStart {
		start = r.start.position(length)
	}

	end = length
	if r.hasEnd {
		end = r.end.position(length)
		if r.inclusive {
			end++
		}
	}

	if start < 0 || start > end || end > length {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "range %s resolves to [%d:%d] with length %d", r, start, end, length)
	}
	return start, end, nil
}

// position computes the raw forward position, without bounds checking.
func (ix Index) position(length int) int {
	if ix.fromBack {
		return length - ix.offset
	}
	return ix.offset
}
