package glsl

// Tokenize splits comment-free GLSL text into identifiers, numbers and
// punctuation. Whitespace is not emitted; it is recorded on the following
// token through Spaced. Every byte of input is consumed, so the scan always
// terminates, even on malformed input.
func Tokenize(src string) []Token {
	estTokens := len(src) / 4
	if estTokens < 16 {
		estTokens = 16
	}

	tokens := make([]Token, 0, estTokens)
	line := 1
	lineStart := true
	directive := false
	spaced := false

	for i := 0; i < len(src); {
		c := src[i]

		if c == '\n' {
			line++
			lineStart = true
			directive = false
			spaced = true
			i++

			continue
		}

		if isBlank(c) {
			spaced = true
			i++

			continue
		}

		if lineStart {
			directive = c == '#'
			lineStart = false
		}

		start := i
		kind := TokenPunct

		switch {
		case isIdentStart(c):
			kind = TokenIdent
			i = scanIdent(src, i)
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			kind = TokenNumber
			i = scanNumber(src, i)
		default:
			i++
		}

		tokens = append(tokens, Token{
			Kind:      kind,
			Text:      src[start:i],
			Pos:       start,
			End:       i,
			Line:      line,
			Spaced:    spaced,
			Directive: directive,
		})
		spaced = false
	}

	return tokens
}

func scanIdent(src string, i int) int {
	for i < len(src) && isIdentPart(src[i]) {
		i++
	}

	return i
}

// scanNumber consumes a numeric literal starting at i. Suffix letters,
// hexadecimal digits and a signed exponent are part of the literal.
func scanNumber(src string, i int) int {
	hex := len(src) > i+1 && src[i] == '0' && (src[i+1] == 'x' || src[i+1] == 'X')
	i++

	for i < len(src) {
		c := src[i]

		switch {
		case isIdentPart(c) || c == '.':
			i++
		case (c == '+' || c == '-') && !hex && (src[i-1] == 'e' || src[i-1] == 'E'):
			i++
		default:
			return i
		}
	}

	return i
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isIdentStart(c byte) bool {
	return isLower(c) || isUpper(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
