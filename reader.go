package fromback

import "io"

// Section returns a reader over the part of r addressed by rng, given the
// total size of the underlying data in bytes. It resolves the bounds and
// hands them to io.NewSectionReader, so reads never stray outside the
// addressed span.
//
// Sizes are denominated in int to match len(); for a file, pass
// int(fi.Size()).
func Section(r io.ReaderAt, size int, rng Range) (*io.SectionReader, error) {
	start, end, err := rng.Resolve(size)
	if err != nil {
		return nil, err
	}
	return io.NewSectionReader(r, int64(start), int64(end-start)), nil
}
