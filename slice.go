package fromback

import "github.com/pkg/errors"

// Slice selects the subslice of s addressed by r. It resolves the bounds
// and hands them to native slicing, so the result shares its backing array
// with s exactly as s[start:end] would.
func Slice[T any](s []T, r Range) ([]T, error) {
	start, end, err := r.Resolve(len(s))
	if err != nil {
		return nil, err
	}
	return s[start:end], nil
}

// At returns the element of s addressed by ix. An element position must
// fall strictly inside the sequence, so Back(0), one past the last element,
// is out of range here even though it is a valid range end.
func At[T any](s []T, ix Index) (T, error) {
	var zero T
	pos, err := ix.Resolve(len(s))
	if err != nil {
		return zero, err
	}
	if pos == len(s) {
		return zero, errors.Wrapf(ErrOutOfRange, "index %s with length %d", ix, len(s))
	}
	return s[pos], nil
}

// Substring selects the part of s addressed by r. Offsets count bytes, not
// runes, matching native string slicing; cutting through the middle of a
// multi-byte rune is no more detected here than it is by s[start:end].
func Substring(s string, r Range) (string, error) {
	start, end, err := r.Resolve(len(s))
	if err != nil {
		return "", err
	}
	return s[start:end], nil
}
