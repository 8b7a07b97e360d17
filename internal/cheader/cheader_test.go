package cheader

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "file name", in: "basic.frag", want: "BASIC_FRAG"},
		{name: "dashes", in: "post-fx.vert", want: "POST_FX_VERT"},
		{name: "already upper", in: "LOGO", want: "LOGO"},
		{name: "mixed", in: "font-8x8.bin", want: "FONT_8X8_BIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToIdentifier(tt.in))
		})
	}
}

func TestNewArray(t *testing.T) {
	a := NewArray("basic.frag", CharTypeChar, []byte("x"))

	assert.Equal(t, "BASIC_FRAG", a.Name)
	assert.Equal(t, "BASIC_FRAG_H", a.Guard)
	assert.Equal(t, CharTypeChar, a.CharType)
}

func TestWriteArray_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, NewArray("hi", CharTypeChar, []byte("hi"))))

	want := `#ifndef HI_H
#define HI_H

#ifdef __cplusplus
extern "C" {
#endif

static const char HI[] = {
    0x68, 0x69, 0x00
};

#define HI_SIZE 2

#ifdef __cplusplus
}
#endif

#endif // HI_H
`
	assert.Equal(t, want, buf.String())
}

func TestWriteArray_DefaultsToUnsignedChar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, NewArray("blob", "", []byte{1})))

	assert.Contains(t, buf.String(), "static const unsigned char BLOB[] = {\n")
}

func TestWriteArray_WrapsRows(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 16)

	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, NewArray("row", CharTypeUnsignedChar, data)))

	full := "    " + strings.Repeat("0xab, ", 16) + "\n"
	assert.Contains(t, buf.String(), "{\n"+full+"    0x00\n};")
}

func TestWriteArray_AlwaysAppendsNUL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, NewArray("z", CharTypeChar, []byte{'a', 0})))

	assert.Contains(t, buf.String(), "    0x61, 0x00, 0x00\n")
	assert.Contains(t, buf.String(), "#define Z_SIZE 2\n")
}

var bytePattern = regexp.MustCompile(`0x([0-9a-f]{2})`)

func TestWriteArray_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("void main(){}"),
		bytes.Repeat([]byte("0123456789"), 7),
		{0x00, 0xff, 0x10, 0x7f},
	}

	for _, payload := range payloads {
		var buf bytes.Buffer
		require.NoError(t, WriteArray(&buf, NewArray("p", CharTypeUnsignedChar, payload)))

		body := buf.String()
		start := strings.Index(body, "{\n")
		end := strings.Index(body, "};")
		require.True(t, start >= 0 && end > start)

		var got []byte
		for _, m := range bytePattern.FindAllStringSubmatch(body[start:end], -1) {
			v, err := strconv.ParseUint(m[1], 16, 8)
			require.NoError(t, err)
			got = append(got, byte(v))
		}

		require.Len(t, got, len(payload)+1)
		assert.Equal(t, byte(0), got[len(got)-1])
		assert.Equal(t, string(payload), string(got[:len(payload)]))
		assert.Contains(t, body, "#define P_SIZE "+strconv.Itoa(len(payload))+"\n")
	}
}

func TestWriteArray_InvalidCharType(t *testing.T) {
	var buf bytes.Buffer
	err := WriteArray(&buf, NewArray("x", "int", []byte("x")))

	require.ErrorIs(t, err, ErrInvalidCharType)
	assert.Zero(t, buf.Len())
}
