package cheader

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrInvalidEscape is returned for a truncated or malformed escape sequence.
var ErrInvalidEscape = errors.New("invalid escape sequence")

var simpleEscapes = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// DecodeEscapes interprets backslash escapes the way a string passed on the
// command line is turned into header bytes: \n \t \r \\ \' \" \a \b \f \v,
// octal \ooo, \xHH, \uXXXX and \UXXXXXXXX. Numeric escapes denote code
// points and are emitted as UTF-8. A backslash before a newline is dropped
// together with it; any other escape is kept as written. Bytes outside
// escapes are copied unchanged.
func DecodeEscapes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}

		if i+1 >= len(s) {
			return nil, fmt.Errorf("offset %d: trailing backslash: %w", i, ErrInvalidEscape)
		}

		i++
		e := s[i]

		if b, ok := simpleEscapes[e]; ok {
			out = append(out, b)
			continue
		}

		switch {
		case e == '\n':
		case e >= '0' && e <= '7':
			end := i + 1
			for end < len(s) && end < i+3 && s[end] >= '0' && s[end] <= '7' {
				end++
			}

			v, _ := strconv.ParseUint(s[i:end], 8, 32)
			out = utf8.AppendRune(out, rune(v))
			i = end - 1
		case e == 'x' || e == 'u' || e == 'U':
			width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[e]
			if i+width >= len(s) {
				return nil, fmt.Errorf("offset %d: truncated \\%c escape: %w", i-1, e, ErrInvalidEscape)
			}

			v, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
			if err != nil || v > utf8.MaxRune {
				return nil, fmt.Errorf("offset %d: bad \\%c escape %q: %w", i-1, e, s[i+1:i+1+width], ErrInvalidEscape)
			}

			out = utf8.AppendRune(out, rune(v))
			i += width
		default:
			out = append(out, '\\', e)
		}
	}

	return out, nil
}
