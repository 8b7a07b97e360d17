package glsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rewrite(src string, table RenameTable, keep NameSet) string {
	return Rewrite(src, Tokenize(src), table, keep)
}

func TestRewrite_WholeTokens(t *testing.T) {
	src := "float abc; float a; a = abc + v.a + a(1);"

	got := rewrite(src, RenameTable{"a": "q", "abc": "r"}, nil)

	assert.Equal(t, "float r;float q;q=r+v.a+a(1);", got)
}

func TestRewrite_Units(t *testing.T) {
	src := "#version 330 core\nfloat x;\nfloat y;\n#define N 4\nvoid main() {\n}"

	got := rewrite(src, nil, nil)

	assert.Equal(t, `#version 330 core\nfloat x;float y;\n#define N 4\nvoid main(){}`, got)
}

func TestRewrite_Compaction(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"operators", "a = b * (c - d) / e , f", "a=b*(c-d)/e,f"},
		{"unary minus", "a = - b;", "a=-b;"},
		{"other operators keep spaces", "a < b && c >= d", "a < b && c >=d"},
		{"lines joined with spaces", "float a\n= 1.0;", "float a=1.0;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewrite(tt.src, nil, nil))
		})
	}
}

func TestRewrite_DefineSpacing(t *testing.T) {
	src := "#define SQ(x) x*x\n#define OFF (1.0)"

	t.Run("every define regains the space", func(t *testing.T) {
		assert.Equal(t, `#define SQ (x)x*x\n#define OFF (1.0)`, rewrite(src, nil, nil))
	})

	t.Run("function-like macros stay glued", func(t *testing.T) {
		tokens := Tokenize(src)
		keep := functionMacros(tokens)

		assert.Equal(t, []string{"SQ"}, keep.Sorted())
		assert.Equal(t, `#define SQ(x)x*x\n#define OFF (1.0)`, Rewrite(src, tokens, nil, keep))
	})
}
