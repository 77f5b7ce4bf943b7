package fromback

import "github.com/pkg/errors"

// ErrOutOfRange is reported when a resolved bound falls outside the target
// sequence, or when a resolved range ends before it starts. It is the same
// condition Go's native indexing panics with; this library surfaces it as an
// error the caller can test with errors.Is.
var ErrOutOfRange = errors.New("index out of range")

// ErrInvalidPattern is reported by Parse and ParseIndex for text that does
// not match the compact range syntax.
var ErrInvalidPattern = errors.New("invalid range pattern")
