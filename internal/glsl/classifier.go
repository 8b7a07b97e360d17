package glsl

// Classify returns, in ascending order, the identifiers that may be renamed.
//
// An identifier occurrence is a candidate when it is not followed by "(" and
// not glued to a preceding "." or "#". A candidate is dropped when it looks
// like a prefixed name (lowercase then uppercase, e.g. uMatrix), when it is
// all uppercase, when any protected set holds it, or when it is reserved.
// Scope is not tracked: anything ambiguous stays untouched.
func Classify(tokens []Token, protected ProtectedNames) []string {
	survivors := NameSet{}

	for i, tok := range tokens {
		if !isRenameSite(tokens, i) {
			continue
		}

		if isExcluded(tok.Text, protected) {
			continue
		}

		survivors.Add(tok.Text)
	}

	return survivors.Sorted()
}

// isRenameSite reports whether the token at i is an identifier occurrence
// that renaming may touch.
func isRenameSite(tokens []Token, i int) bool {
	tok := tokens[i]
	if tok.Kind != TokenIdent {
		return false
	}

	if i+1 < len(tokens) && tokens[i+1].IsPunct('(') {
		return false
	}

	if i > 0 && !tok.Spaced {
		prev := tokens[i-1]
		if prev.IsPunct('.') || prev.IsPunct('#') {
			return false
		}
	}

	return true
}

func isExcluded(name string, protected ProtectedNames) bool {
	return hasPrefixConvention(name) ||
		isAllUpper(name) ||
		protected.Has(name) ||
		IsReserved(name)
}

// hasPrefixConvention matches names such as uMatrix or vTexCoord: one
// lowercase letter directly followed by an uppercase letter.
func hasPrefixConvention(name string) bool {
	return len(name) >= 2 && isLower(name[0]) && isUpper(name[1])
}

// isAllUpper reports whether name has at least one letter and no lowercase
// letter, so MAX_LIGHTS and A1 qualify but _ and _1 do not.
func isAllUpper(name string) bool {
	cased := false

	for i := 0; i < len(name); i++ {
		switch {
		case isLower(name[i]):
			return false
		case isUpper(name[i]):
			cased = true
		}
	}

	return cased
}
