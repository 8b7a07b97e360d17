package glsl

// ProtectedNames collects the identifiers whose syntactic role forbids
// renaming. A name in any set stays untouched for the whole run.
type ProtectedNames struct {
	Functions           NameSet
	Structs             NameSet
	StructMembers       NameSet
	UniformBlocks       NameSet // block type names and instance names
	UniformBlockMembers NameSet
	Macros              NameSet // every identifier on a preprocessor line
	Layout              NameSet // every identifier inside layout(...)
}

// NewProtectedNames returns empty sets.
func NewProtectedNames() ProtectedNames {
	return ProtectedNames{
		Functions:           NameSet{},
		Structs:             NameSet{},
		StructMembers:       NameSet{},
		UniformBlocks:       NameSet{},
		UniformBlockMembers: NameSet{},
		Macros:              NameSet{},
		Layout:              NameSet{},
	}
}

// Has reports whether name is in any of the sets.
func (p ProtectedNames) Has(name string) bool {
	return p.Functions.Has(name) ||
		p.Structs.Has(name) ||
		p.StructMembers.Has(name) ||
		p.UniformBlocks.Has(name) ||
		p.UniformBlockMembers.Has(name) ||
		p.Macros.Has(name) ||
		p.Layout.Has(name)
}

// interfaceQualifiers open a named block whose names are visible outside the
// shader: to the host for uniform and buffer blocks, to the neighbouring stage
// for in and out blocks.
var interfaceQualifiers = map[string]struct{}{
	"uniform": {},
	"buffer":  {},
	"in":      {},
	"out":     {},
}

// ScanProtected extracts function names, struct names and members,
// interface block names, instances and members, preprocessor identifiers
// and layout qualifier arguments from a token stream.
//
// The extraction is shape-based, not a parse: "type name (" is taken as a
// function declaration even at some call sites, and bodies end at the first
// "}". Both errors only ever protect more names.
func ScanProtected(tokens []Token) ProtectedNames {
	names := NewProtectedNames()

	for i, tok := range tokens {
		if tok.Directive && tok.Kind == TokenIdent {
			names.Macros.Add(tok.Text)
		}

		if tok.Kind != TokenIdent {
			continue
		}

		if isFunctionDecl(tokens, i) {
			names.Functions.Add(tokens[i+1].Text)
		}

		if tok.Text == "layout" {
			scanLayout(tokens, i, names.Layout)
			continue
		}

		if tok.Text == "struct" {
			scanStruct(tokens, i, names)
			continue
		}

		if _, ok := interfaceQualifiers[tok.Text]; ok {
			scanInterfaceBlock(tokens, i, names)
		}
	}

	return names
}

func isFunctionDecl(tokens []Token, i int) bool {
	return i+2 < len(tokens) &&
		tokens[i+1].Kind == TokenIdent &&
		tokens[i+2].IsPunct('(')
}

// scanLayout records every identifier between "layout (" at i and its
// matching ")". Qualifier names such as image formats, "vertices" or
// "xfb_offset" must reach the compiler as written, and so must the macros
// used as their values.
func scanLayout(tokens []Token, i int, layout NameSet) {
	if i+1 >= len(tokens) || !tokens[i+1].IsPunct('(') {
		return
	}

	depth := 0
	for j := i + 1; j < len(tokens); j++ {
		tok := tokens[j]

		switch {
		case tok.IsPunct('('):
			depth++
		case tok.IsPunct(')'):
			depth--
			if depth == 0 {
				return
			}
		case tok.Kind == TokenIdent:
			layout.Add(tok.Text)
		}
	}
}

// blockBody matches "keyword Name {" at i and returns the index of the name,
// the body bounds and whether the shape matched.
func blockBody(tokens []Token, i int) (name, bodyStart, bodyEnd int, ok bool) {
	if i+2 >= len(tokens) || tokens[i+1].Kind != TokenIdent || !tokens[i+2].IsPunct('{') {
		return 0, 0, 0, false
	}

	bodyStart = i + 3
	for j := bodyStart; j < len(tokens); j++ {
		if tokens[j].IsPunct('}') {
			return i + 1, bodyStart, j, true
		}
	}

	return 0, 0, 0, false
}

func scanStruct(tokens []Token, i int, names ProtectedNames) {
	name, start, end, ok := blockBody(tokens, i)
	if !ok {
		return
	}

	names.Structs.Add(tokens[name].Text)
	addMembers(tokens, start, end, names.StructMembers)
}

func scanInterfaceBlock(tokens []Token, i int, names ProtectedNames) {
	name, start, end, ok := blockBody(tokens, i)
	if !ok {
		return
	}

	names.UniformBlocks.Add(tokens[name].Text)
	addMembers(tokens, start, end, names.UniformBlockMembers)

	if end+2 < len(tokens) && tokens[end+1].Kind == TokenIdent &&
		(tokens[end+2].IsPunct(';') || tokens[end+2].IsPunct('[')) {
		names.UniformBlocks.Add(tokens[end+1].Text)
	}
}

// addMembers records the declarators of a struct or block body. In every
// ";"-terminated declaration, an identifier other than the leading one that
// is followed by ";", "," or "[" is a declared member.
func addMembers(tokens []Token, start, end int, members NameSet) {
	leading := true

	for j := start; j < end; j++ {
		tok := tokens[j]

		if tok.IsPunct(';') {
			leading = true
			continue
		}

		if tok.Kind != TokenIdent {
			continue
		}

		if leading {
			leading = false
			continue
		}

		next := tokens[j+1]
		if next.IsPunct(';') || next.IsPunct(',') || next.IsPunct('[') {
			members.Add(tok.Text)
		}
	}
}
