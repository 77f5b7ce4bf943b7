package fromback

import (
	"strconv"

	"github.com/pkg/errors"
)

// The compact pattern syntax is the textual twin of the builder API:
//
//	pattern  = endpoint? ".." "="? endpoint?   (Parse)
//	         | endpoint                        (ParseIndex)
//	endpoint = "^"? digits
//
// "^" anchors an offset at the back of the sequence, ".." separates the
// bounds, and "=" marks the end bound inclusive. No whitespace is allowed;
// patterns are literals, not a command language.

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenInt
	tokenCaret
	tokenDotDot
	tokenDotDotEq
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// scanner splits a pattern into tokens, tracking byte offsets for error
// reporting.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) next() (token, error) {
	if s.pos >= len(s.input) {
		return token{kind: tokenEOF, pos: s.pos}, nil
	}

	start := s.pos
	switch c := s.input[s.pos]; {
	case c == '^':
		s.pos++
		return token{kind: tokenCaret, text: "^", pos: start}, nil
	case c == '.':
		if s.pos+1 >= len(s.input) || s.input[s.pos+1] != '.' {
			return token{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: unexpected character %q at offset %d", s.input, c, start)
		}
		s.pos += 2
		if s.pos < len(s.input) && s.input[s.pos] == '=' {
			s.pos++
			return token{kind: tokenDotDotEq, text: "..=", pos: start}, nil
		}
		return token{kind: tokenDotDot, text: "..", pos: start}, nil
	case c >= '0' && c <= '9':
		for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
			s.pos++
		}
		return token{kind: tokenInt, text: s.input[start:s.pos], pos: start}, nil
	default:
		return token{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: unexpected character %q at offset %d", s.input, c, start)
	}
}

// Parse builds a Range from its compact textual form. Either bound may be
// omitted, and either may carry the from-back marker:
//
//	Parse("2..^3")  // From(Front(2)).To(Back(3))
//	Parse("2..=^3") // From(Front(2)).Through(Back(3))
//	Parse("^2..")   // From(Back(2))
//	Parse("..7")    // To(Front(7))
//	Parse("..")     // All()
//
// Malformed patterns report ErrInvalidPattern. Parsing only constructs the
// Range; bounds are not checked against any sequence until Resolve.
func Parse(pattern string) (Range, error) {
	s := scanner{input: pattern}
	tok, err := s.next()
	if err != nil {
		return Range{}, err
	}

	var r Range
	if tok.kind == tokenCaret || tok.kind == tokenInt {
		r.start, tok, err = parseEndpoint(&s, tok)
		if err != nil {
			return Range{}, err
		}
		r.hasStart = true
	}

	switch tok.kind {
	case tokenDotDot:
	case tokenDotDotEq:
		r.inclusive = true
	default:
		return Range{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: expected \"..\" at offset %d", pattern, tok.pos)
	}

	if tok, err = s.next(); err != nil {
		return Range{}, err
	}
	if tok.kind == tokenCaret || tok.kind == tokenInt {
		r.end, tok, err = parseEndpoint(&s, tok)
		if err != nil {
			return Range{}, err
		}
		r.hasEnd = true
	}

	if tok.kind != tokenEOF {
		return Range{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: unexpected %q at offset %d", pattern, tok.text, tok.pos)
	}
	return r, nil
}

// ParseIndex builds an Index from its compact textual form: "5" counts from
// the front, "^2" from the back. Malformed patterns report
// ErrInvalidPattern.
func ParseIndex(pattern string) (Index, error) {
	s := scanner{input: pattern}
	tok, err := s.next()
	if err != nil {
		return Index{}, err
	}
	if tok.kind != tokenCaret && tok.kind != tokenInt {
		return Index{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: expected an index", pattern)
	}

	ix, tok, err := parseEndpoint(&s, tok)
	if err != nil {
		return Index{}, err
	}
	if tok.kind != tokenEOF {
		return Index{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: unexpected %q at offset %d", pattern, tok.text, tok.pos)
	}
	return ix, nil
}

// MustParse is like Parse but panics on malformed patterns. It keeps range
// literals compact at initialization sites, in the manner of
// regexp.MustCompile.
func MustParse(pattern string) Range {
	r, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// MustParseIndex is like ParseIndex but panics on malformed patterns.
func MustParseIndex(pattern string) Index {
	ix, err := ParseIndex(pattern)
	if err != nil {
		panic(err)
	}
	return ix
}

// parseEndpoint consumes one endpoint beginning at tok and returns it along
// with the token that follows it.
func parseEndpoint(s *scanner, tok token) (Index, token, error) {
	fromBack := false
	if tok.kind == tokenCaret {
		fromBack = true
		var err error
		if tok, err = s.next(); err != nil {
			return Index{}, token{}, err
		}
		if tok.kind != tokenInt {
			return Index{}, token{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: expected an offset after \"^\" at offset %d", s.input, tok.pos)
		}
	}

	offset, err := strconv.Atoi(tok.text)
	if err != nil {
		// Digits only by construction; Atoi can only overflow here.
		return Index{}, token{}, errors.Wrapf(ErrInvalidPattern, "pattern %q: offset %s does not fit in an int", s.input, tok.text)
	}

	next, err := s.next()
	if err != nil {
		return Index{}, token{}, err
	}
	if fromBack {
		return Back(offset), next, nil
	}
	return Front(offset), next, nil
}
