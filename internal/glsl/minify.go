// Package glsl minifies GLSL shader source: it strips comments, compacts
// whitespace while keeping preprocessor lines intact, and renames the
// identifiers it can prove are local to the shader into the shortest unique
// lowercase labels.
//
// The minifier works on tokens, not on a grammar. It assumes the input
// already compiles and errs on the side of leaving names alone.
package glsl

import (
	"fmt"
)

// Options tunes a minification run.
type Options struct {
	// Lenient keeps going on an unterminated block comment or unbalanced
	// braces and returns whatever the passes produce.
	Lenient bool

	// AvoidCollisions skips short labels that equal a reserved word or an
	// identifier that stays in the output unrenamed.
	AvoidCollisions bool

	// PreserveFunctionMacros restores the space before "(" only for
	// "#define NAME (" lines that had one in the source. When false every
	// "#define NAME(" gets the space.
	PreserveFunctionMacros bool
}

// DefaultOptions returns strict options with collision avoidance on.
func DefaultOptions() Options {
	return Options{
		AvoidCollisions: true,
	}
}

// Result is the outcome of Minify.
type Result struct {
	// Output is the minified shader on a single line; line breaks are the
	// two-byte escape `\n`.
	Output string
	// Renames maps each renamed identifier to its short name.
	Renames RenameTable
	// Protected holds the names excluded because of their syntactic role.
	Protected ProtectedNames
}

// Minify runs the full pipeline over one shader source.
func Minify(src string, opts Options) (Result, error) {
	stripped, err := StripComments(src)
	if err != nil && !opts.Lenient {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}

	tokens := Tokenize(stripped)

	if !opts.Lenient {
		if err := checkBraces(tokens); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrMalformedSource, err)
		}
	}

	protected := ScanProtected(tokens)
	survivors := Classify(tokens, protected)

	var skip func(string) bool
	if opts.AvoidCollisions {
		skip = collisionFilter(tokens, survivors)
	}

	table := Assign(survivors, skip)

	var keep NameSet
	if opts.PreserveFunctionMacros {
		keep = functionMacros(tokens)
	}

	return Result{
		Output:    Rewrite(stripped, tokens, table, keep),
		Renames:   table,
		Protected: protected,
	}, nil
}

// collisionFilter rejects labels that would clash with a reserved word or with
// an identifier occurrence the rewriter leaves as it is.
func collisionFilter(tokens []Token, survivors []string) func(string) bool {
	renamed := NameSet{}
	for _, name := range survivors {
		renamed.Add(name)
	}

	kept := NameSet{}

	for i, tok := range tokens {
		if tok.Kind != TokenIdent {
			continue
		}

		if renamed.Has(tok.Text) && isRenameSite(tokens, i) {
			continue
		}

		kept.Add(tok.Text)
	}

	return func(label string) bool {
		return IsReserved(label) || kept.Has(label)
	}
}

func checkBraces(tokens []Token) error {
	depth := 0

	for _, tok := range tokens {
		switch {
		case tok.IsPunct('{'):
			depth++
		case tok.IsPunct('}'):
			depth--
			if depth < 0 {
				return fmt.Errorf("line %d: unexpected '}': %w", tok.Line, ErrUnbalancedBraces)
			}
		}
	}

	if depth > 0 {
		return fmt.Errorf("%d unclosed '{': %w", depth, ErrUnbalancedBraces)
	}

	return nil
}
