package glsl

import "errors"

var (
	// ErrMalformedSource is returned in strict mode when the source cannot be
	// minified safely. The concrete cause is wrapped alongside it.
	ErrMalformedSource = errors.New("malformed shader source")

	// ErrUnterminatedComment reports a "/*" without a matching "*/".
	ErrUnterminatedComment = errors.New("unterminated block comment")

	// ErrUnbalancedBraces reports a "}" without an opener or a "{" that is
	// never closed.
	ErrUnbalancedBraces = errors.New("unbalanced braces")
)
