// Package cheader renders payloads as C headers: a NUL-terminated byte
// array with its size constant, and aggregate headers that include a list
// of generated headers.
package cheader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const bytesPerRow = 16

// Character types accepted for the array element.
const (
	CharTypeChar         = "char"
	CharTypeUnsignedChar = "unsigned char"
)

// ErrInvalidCharType is returned for an element type other than char or
// unsigned char.
var ErrInvalidCharType = errors.New("invalid array element type")

// Array describes one byte-array header.
type Array struct {
	// Name is the C identifier of the array; the size constant is Name_SIZE.
	Name string
	// Guard is the include-guard macro.
	Guard string
	// CharType is CharTypeChar or CharTypeUnsignedChar; empty means
	// unsigned char.
	CharType string
	Data     []byte
}

// ToIdentifier derives a C identifier from a file or payload name:
// upper-cased, with dots and dashes turned into underscores.
func ToIdentifier(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(name))
}

// NewArray names an array after name, guarding it with NAME_H.
func NewArray(name, charType string, data []byte) Array {
	ident := ToIdentifier(name)

	return Array{
		Name:     ident,
		Guard:    ident + "_H",
		CharType: charType,
		Data:     data,
	}
}

// WriteArray writes the header for a. A NUL byte is always appended after
// the data, even when the data already ends with one, and Name_SIZE counts
// the data without it.
func WriteArray(w io.Writer, a Array) error {
	charType := a.CharType
	if charType == "" {
		charType = CharTypeUnsignedChar
	}

	if charType != CharTypeChar && charType != CharTypeUnsignedChar {
		return fmt.Errorf("%q: %w", charType, ErrInvalidCharType)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#ifndef %s\n", a.Guard)
	fmt.Fprintf(bw, "#define %s\n\n", a.Guard)
	fmt.Fprint(bw, "#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")
	fmt.Fprintf(bw, "static const %s %s[] = {\n", charType, a.Name)

	data := make([]byte, 0, len(a.Data)+1)
	data = append(data, a.Data...)
	data = append(data, 0)

	for i, b := range data {
		if i%bytesPerRow == 0 {
			bw.WriteString("    ")
		}

		fmt.Fprintf(bw, "0x%02x", b)

		if i < len(data)-1 {
			bw.WriteString(", ")
		}

		if (i+1)%bytesPerRow == 0 || i == len(data)-1 {
			bw.WriteString("\n")
		}
	}

	bw.WriteString("};\n\n")
	fmt.Fprintf(bw, "#define %s_SIZE %d\n\n", a.Name, len(a.Data))
	fmt.Fprint(bw, "#ifdef __cplusplus\n}\n#endif\n\n")
	fmt.Fprintf(bw, "#endif // %s\n", a.Guard)

	return bw.Flush()
}
