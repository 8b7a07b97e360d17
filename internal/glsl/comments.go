package glsl

import (
	"fmt"
	"strings"
)

const (
	blockOpen  = "/*"
	blockClose = "*/"
	lineOpen   = "//"
)

// StripComments removes block and line comments, trims every line and drops
// the lines left empty. The result is always returned; when a block comment
// is never closed the opener and everything after it are kept and the error
// wraps ErrUnterminatedComment.
//
// Removing a comment can splice a new one together ("/" + "/*x*/" + "*y*/"),
// so passes repeat until the text stops changing. Each pass only deletes
// bytes, which bounds the loop by the input length.
func StripComments(src string) (string, error) {
	var lastErr error

	for {
		next, err := stripPass(src)
		if err != nil {
			lastErr = err
		}

		if next == src {
			return next, lastErr
		}

		src = next
	}
}

func stripPass(src string) (string, error) {
	text, err := stripBlockComments(src)

	lines := strings.Split(text, "\n")
	kept := lines[:0]

	for _, line := range lines {
		if idx := strings.Index(line, lineOpen); idx >= 0 {
			line = line[:idx]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n"), err
}

func stripBlockComments(src string) (string, error) {
	var b strings.Builder

	b.Grow(len(src))

	rest := src

	for {
		open := strings.Index(rest, blockOpen)
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}

		end := strings.Index(rest[open+len(blockOpen):], blockClose)
		if end < 0 {
			b.WriteString(rest)

			line := strings.Count(src[:len(src)-len(rest)+open], "\n") + 1

			return b.String(), fmt.Errorf("line %d: %w", line, ErrUnterminatedComment)
		}

		b.WriteString(rest[:open])
		rest = rest[open+len(blockOpen)+end+len(blockClose):]
	}
}
