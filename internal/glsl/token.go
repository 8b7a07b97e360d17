package glsl

// TokenKind classifies a lexical token.
type TokenKind uint8

const (
	// TokenIdent is an identifier: a letter or underscore followed by letters,
	// digits or underscores.
	TokenIdent TokenKind = iota
	// TokenNumber is a numeric literal, suffixes and exponents included.
	TokenNumber
	// TokenPunct is any other single non-blank byte.
	TokenPunct
)

// String returns a readable name for the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenIdent:
		return "ident"
	case TokenNumber:
		return "number"
	case TokenPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of comment-free GLSL text.
type Token struct {
	Kind TokenKind
	Text string
	// Pos and End are byte offsets into the tokenized text.
	Pos int
	End int
	// Line is 1-based.
	Line int
	// Spaced is true when blanks or a newline separate the token from the
	// previous one.
	Spaced bool
	// Directive is true for tokens on a preprocessor line.
	Directive bool
}

// IsPunct reports whether t is the punctuation byte c.
func (t Token) IsPunct(c byte) bool {
	return t.Kind == TokenPunct && t.Text[0] == c
}

// IsIdent reports whether t is the identifier name.
func (t Token) IsIdent(name string) bool {
	return t.Kind == TokenIdent && t.Text == name
}
