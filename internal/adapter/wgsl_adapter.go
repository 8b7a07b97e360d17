package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/naga"
	nagaglsl "github.com/gogpu/naga/glsl"
)

// ErrUnknownGLSLVersion is returned for a target version naga cannot emit.
var ErrUnknownGLSLVersion = errors.New("unknown GLSL version")

// DefaultGLSLVersion is used when no target version is given.
const DefaultGLSLVersion = "330"

var glslVersions = map[string]nagaglsl.Version{
	"330":   nagaglsl.Version330,
	"400":   nagaglsl.Version400,
	"410":   nagaglsl.Version410,
	"420":   nagaglsl.Version420,
	"430":   nagaglsl.Version430,
	"450":   nagaglsl.Version450,
	"460":   nagaglsl.Version460,
	"300es": nagaglsl.VersionES300,
	"310es": nagaglsl.VersionES310,
	"320es": nagaglsl.VersionES320,
}

// WGSLAdapter translates WGSL shaders to GLSL so they can go through the
// same minification as hand-written GLSL.
type WGSLAdapter interface {
	// ToGLSL compiles the first entry point of src for the given GLSL
	// version ("330", "450", "300es", ...). An empty version means
	// DefaultGLSLVersion.
	ToGLSL(ctx context.Context, src, version string) (string, error)
}

// NagaWGSLAdapter implements WGSLAdapter with the pure Go naga compiler.
type NagaWGSLAdapter struct{}

// NewNagaWGSLAdapter constructs a NagaWGSLAdapter.
func NewNagaWGSLAdapter() *NagaWGSLAdapter {
	return &NagaWGSLAdapter{}
}

// ParseGLSLVersion maps a version string to a naga target version.
func ParseGLSLVersion(version string) (nagaglsl.Version, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(version), " ", ""))
	if key == "" {
		key = DefaultGLSLVersion
	}

	v, ok := glslVersions[key]
	if !ok {
		return nagaglsl.Version{}, fmt.Errorf("%q: %w", version, ErrUnknownGLSLVersion)
	}

	return v, nil
}

// ToGLSL parses, lowers and emits src as GLSL.
func (a *NagaWGSLAdapter) ToGLSL(ctx context.Context, src, version string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := ParseGLSLVersion(version)
	if err != nil {
		return "", err
	}

	ast, err := naga.Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse wgsl: %w", err)
	}

	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return "", fmt.Errorf("lower wgsl: %w", err)
	}

	opts := nagaglsl.DefaultOptions()
	opts.LangVersion = target

	out, info, err := nagaglsl.Compile(module, opts)
	if err != nil {
		return "", fmt.Errorf("emit glsl: %w", err)
	}

	slog.Debug("Translated WGSL", "version", target.String(), "required", info.RequiredVersion.String(), "bytes", len(out))

	return out, nil
}
