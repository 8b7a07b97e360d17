package glsl

import (
	"regexp"
	"strings"
)

// lineBreak joins output units. It is the two-byte escape, not a newline:
// the result is meant to sit inside a single-line C string literal.
const lineBreak = `\n`

var (
	compactPattern = regexp.MustCompile(`\s*([;,+\-*/(){}=])\s*`)
	definePattern  = regexp.MustCompile(`(#define\s+(\w+))\(`)
)

// Rewrite applies table to the renamable identifier occurrences of src,
// keeps preprocessor lines as standalone units, packs every other line into
// space-separated runs, joins the units with `\n` and drops whitespace around
// ; , + - * / ( ) { } =. Finally "#define NAME(" regains the space before
// its parenthesis; keepFunctionMacros limits that to the macros listed.
//
// src must be the text tokens were produced from.
func Rewrite(src string, tokens []Token, table RenameTable, keepFunctionMacros NameSet) string {
	renamed := substitute(src, tokens, table)

	var (
		units  []string
		buffer strings.Builder
	)

	for _, line := range strings.Split(renamed, "\n") {
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if buffer.Len() > 0 {
				units = append(units, buffer.String())
				buffer.Reset()
			}

			units = append(units, line)

			continue
		}

		buffer.WriteString(line)
		buffer.WriteByte(' ')
	}

	if buffer.Len() > 0 {
		units = append(units, buffer.String())
	}

	out := strings.TrimSpace(strings.Join(units, lineBreak))
	out = compactPattern.ReplaceAllString(out, "$1")

	return definePattern.ReplaceAllStringFunc(out, func(match string) string {
		name := definePattern.FindStringSubmatch(match)[2]
		if keepFunctionMacros != nil && keepFunctionMacros.Has(name) {
			return match
		}

		return match[:len(match)-1] + " ("
	})
}

func substitute(src string, tokens []Token, table RenameTable) string {
	if len(table) == 0 {
		return src
	}

	var b strings.Builder

	b.Grow(len(src))

	last := 0

	for i, tok := range tokens {
		short, ok := table[tok.Text]
		if !ok || !isRenameSite(tokens, i) {
			continue
		}

		b.WriteString(src[last:tok.Pos])
		b.WriteString(short)
		last = tok.End
	}

	b.WriteString(src[last:])

	return b.String()
}

// functionMacros returns the names of macros defined with their parameter
// list glued to the name, as in "#define SQ(x) x*x".
func functionMacros(tokens []Token) NameSet {
	macros := NameSet{}

	for i := 0; i+3 < len(tokens); i++ {
		if !tokens[i].IsPunct('#') || !tokens[i].Directive {
			continue
		}

		if tokens[i+1].IsIdent("define") && tokens[i+2].Kind == TokenIdent &&
			tokens[i+3].IsPunct('(') && !tokens[i+3].Spaced {
			macros.Add(tokens[i+2].Text)
		}
	}

	return macros
}
