package cheader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Kind selects the family of generated headers an aggregate includes.
type Kind string

const (
	// KindShaders aggregates ./shaders/<name>.h under SHADERS_H.
	KindShaders Kind = "shaders"
	// KindAssets aggregates ./assets/<name>.h under ASSETS_H.
	KindAssets Kind = "assets"
)

// ErrUnknownKind is returned for an aggregate kind other than shaders or
// assets.
var ErrUnknownKind = errors.New("unknown aggregate kind")

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindShaders, KindAssets:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// Guard returns the include guard of the aggregate header.
func (k Kind) Guard() string {
	return ToIdentifier(string(k)) + "_H"
}

func (k Kind) noun() string {
	if k == KindAssets {
		return "asset"
	}

	return "shader"
}

// WriteAggregate writes a header including ./<kind>/<name>.h for every name,
// in the given order.
func WriteAggregate(w io.Writer, kind Kind, names []string) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	guard := kind.Guard()

	fmt.Fprintf(bw, "#ifndef %s\n", guard)
	fmt.Fprintf(bw, "#define %s\n\n", guard)
	fmt.Fprintf(bw, "// Auto-generated header that includes all %s headers\n\n", kind.noun())

	for _, name := range names {
		fmt.Fprintf(bw, "#include \"./%s/%s.h\"\n", kind, name)
	}

	fmt.Fprintf(bw, "\n#endif // %s\n", guard)

	return bw.Flush()
}
