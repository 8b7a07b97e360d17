package glsl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"block comment across lines", "a /* x\n y */ b", "a  b"},
		{"shortest block span", "a /* 1 */ b /* 2 */ c", "a  b  c"},
		{"line comments and trimming", "float x; // hi\n// whole line\n  y;  ", "float x;\ny;"},
		{"blank lines dropped", "a;\n\n   \n\tb;", "a;\nb;"},
		{"crlf line endings", "a;\r\nb;\r\n", "a;\nb;"},
		{"comment inside directive", "#define N 4 // lights", "#define N 4"},
		{"only comments", "/* a */\n// b\n", ""},
		{"spliced comment", "//*x*/*y*/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripComments(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripComments_Idempotent(t *testing.T) {
	inputs := []string{
		"void main() { /* a */ float x; // b\n}",
		"//*x*/*y*/\nfloat z;",
		"/ /* */ * keep */",
		"a /*/ still comment */ b",
		"#version 330\n\n/**/\nvoid main(){}\n",
	}

	for _, input := range inputs {
		once, err := StripComments(input)
		require.NoError(t, err)

		twice, err := StripComments(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestStripComments_Unterminated(t *testing.T) {
	got, err := StripComments("float a;\nfloat b; /* open\n// tail")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedComment))
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "float a;\nfloat b; /* open", got)
}
