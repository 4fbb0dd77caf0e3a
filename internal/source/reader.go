package source

// reader.go cleans raw input bytes before they reach the CSV parser.
//
//   - a leading UTF-8 BOM (0xEF 0xBB 0xBF), as written by Excel on Windows, is dropped
//   - invalid UTF-8 bytes are replaced with '?'
//
// Both steps stream; the input is never held in memory as a whole.

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewCleanReader wraps r so that it yields BOM-less, valid UTF-8.
func NewCleanReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return &utf8Sanitizer{r: br}
}

// utf8Sanitizer copies runes from r, writing '?' for every byte that does not
// start a valid UTF-8 sequence. A genuine U+FFFD in the input is kept.
type utf8Sanitizer struct {
	r *bufio.Reader
}

// Read implements io.Reader.
func (s *utf8Sanitizer) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		r, size, err := s.r.ReadRune()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}

		if r == utf8.RuneError && size == 1 {
			p[n] = '?'
			n++
			continue
		}

		if size > len(p)-n {
			_ = s.r.UnreadRune()
			break
		}
		n += utf8.EncodeRune(p[n:], r)
	}

	if n == 0 && len(p) > 0 {
		return 0, io.ErrShortBuffer
	}
	return n, nil
}
