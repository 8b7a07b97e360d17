// Package domain holds the glslpack workflows: minifying shaders, rendering
// them and other payloads as C headers, and manifest-driven batch builds.
package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"glslpack.dev/pkg/glslpack/internal/adapter"
	"glslpack.dev/pkg/glslpack/internal/cheader"
	"glslpack.dev/pkg/glslpack/internal/glsl"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

// ErrMalformedRequest is returned for argument combinations that cannot be
// served, before any file is read or written.
var ErrMalformedRequest = errors.New("malformed request")

const (
	headerPerm = 0o644
	wgslExt    = ".wgsl"
)

// MinifyArgs contains the arguments for minifying one shader.
type MinifyArgs struct {
	Source  m.Path
	Options glsl.Options
	// GLSLVersion is the target of WGSL sources; GLSL sources ignore it.
	GLSLVersion string
}

// HeaderArgs contains the arguments for rendering one byte-array header.
// Exactly one of File and FromString selects the input.
type HeaderArgs struct {
	Output m.Path
	File   m.Path
	// String is decoded with cheader.DecodeEscapes when FromString is set.
	String     string
	FromString bool
	// Name is required in string mode; in file mode it defaults to the
	// file's base name.
	Name     string
	CharType string
}

// ShaderArgs contains the arguments for turning a shader into a header.
type ShaderArgs struct {
	Source      m.Path
	Name        string
	Output      m.Path
	Options     glsl.Options
	GLSLVersion string
}

// AggregateArgs contains the arguments for an aggregate include header.
type AggregateArgs struct {
	Output m.Path
	Kind   cheader.Kind
	Names  []string
}

// Workflow defines the glslpack use cases.
type Workflow interface {
	Minify(ctx context.Context, args MinifyArgs) (glsl.Result, error)
	Header(ctx context.Context, args HeaderArgs) error
	Shader(ctx context.Context, args ShaderArgs) (m.BuildEntry, error)
	Aggregate(ctx context.Context, args AggregateArgs) error
	Build(ctx context.Context, args BuildArgs) (m.BuildReport, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.WGSLAdapter
	adapter.ManifestStore
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	wgslAdapter adapter.WGSLAdapter,
	manifestStore adapter.ManifestStore,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		WGSLAdapter:     wgslAdapter,
		ManifestStore:   manifestStore,
	}
}

func (w *workflow) Minify(ctx context.Context, args MinifyArgs) (glsl.Result, error) {
	res, _, err := w.minify(ctx, args)
	return res, err
}

func (w *workflow) minify(ctx context.Context, args MinifyArgs) (glsl.Result, int, error) {
	if err := ctx.Err(); err != nil {
		return glsl.Result{}, 0, err
	}

	data, err := w.ReadFile(args.Source)
	if err != nil {
		return glsl.Result{}, 0, fmt.Errorf("read shader: %w", err)
	}

	src := string(data)

	if strings.EqualFold(filepath.Ext(string(args.Source)), wgslExt) {
		src, err = w.ToGLSL(ctx, src, args.GLSLVersion)
		if err != nil {
			return glsl.Result{}, 0, fmt.Errorf("translate %s: %w", args.Source, err)
		}
	}

	res, err := glsl.Minify(src, args.Options)
	if err != nil {
		slog.Error("Failed to minify shader", "source", args.Source, "error", err)
		return glsl.Result{}, 0, fmt.Errorf("minify %s: %w", args.Source, err)
	}

	slog.Debug("Minified shader", "source", args.Source, "in", len(data), "out", len(res.Output), "renamed", len(res.Renames))

	return res, len(data), nil
}

func (w *workflow) Header(ctx context.Context, args HeaderArgs) error {
	_, err := w.header(ctx, args)
	return err
}

func (w *workflow) header(ctx context.Context, args HeaderArgs) (int, error) {
	if err := validateHeaderArgs(args); err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var (
		data []byte
		name = args.Name
		err  error
	)

	if args.FromString {
		data, err = cheader.DecodeEscapes(args.String)
		if err != nil {
			return 0, fmt.Errorf("decode string: %w", err)
		}
	} else {
		data, err = w.ReadRaw(args.File)
		if err != nil {
			return 0, fmt.Errorf("read payload: %w", err)
		}

		if name == "" {
			name = filepath.Base(string(args.File))
		}
	}

	if err := w.writeArray(args.Output, cheader.NewArray(name, args.CharType, data)); err != nil {
		return 0, err
	}

	return len(data), nil
}

func validateHeaderArgs(args HeaderArgs) error {
	switch {
	case args.Output == "":
		return fmt.Errorf("output path is required: %w", ErrMalformedRequest)
	case args.FromString == (args.File != ""):
		return fmt.Errorf("exactly one of file or string input is required: %w", ErrMalformedRequest)
	case args.FromString && args.Name == "":
		return fmt.Errorf("a name is required with string input: %w", ErrMalformedRequest)
	}

	switch args.CharType {
	case "", cheader.CharTypeChar, cheader.CharTypeUnsignedChar:
		return nil
	default:
		return fmt.Errorf("%w: %q: %w", ErrMalformedRequest, args.CharType, cheader.ErrInvalidCharType)
	}
}

func (w *workflow) writeArray(output m.Path, array cheader.Array) error {
	var buf bytes.Buffer
	if err := cheader.WriteArray(&buf, array); err != nil {
		return fmt.Errorf("render %s: %w", array.Name, err)
	}

	if err := w.WriteFile(output, buf.Bytes(), headerPerm); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	slog.Debug("Wrote header", "output", output, "array", array.Name, "bytes", len(array.Data))

	return nil
}

func (w *workflow) Shader(ctx context.Context, args ShaderArgs) (m.BuildEntry, error) {
	if args.Name == "" || args.Output == "" {
		return m.BuildEntry{}, fmt.Errorf("shader name and output are required: %w", ErrMalformedRequest)
	}

	res, inputSize, err := w.minify(ctx, MinifyArgs{
		Source:      args.Source,
		Options:     args.Options,
		GLSLVersion: args.GLSLVersion,
	})
	if err != nil {
		return m.BuildEntry{}, err
	}

	data, err := cheader.DecodeEscapes(res.Output)
	if err != nil {
		return m.BuildEntry{}, fmt.Errorf("decode minified %s: %w", args.Source, err)
	}

	if err := w.writeArray(args.Output, cheader.NewArray(args.Name, cheader.CharTypeChar, data)); err != nil {
		return m.BuildEntry{}, err
	}

	return m.BuildEntry{
		Name:       args.Name,
		Kind:       m.EntryShader,
		Source:     args.Source,
		Output:     args.Output,
		InputSize:  inputSize,
		OutputSize: len(data),
		Renamed:    len(res.Renames),
	}, nil
}

func (w *workflow) Aggregate(ctx context.Context, args AggregateArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if args.Output == "" {
		return fmt.Errorf("output path is required: %w", ErrMalformedRequest)
	}

	var buf bytes.Buffer
	if err := cheader.WriteAggregate(&buf, args.Kind, args.Names); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}

	if err := w.WriteFile(args.Output, buf.Bytes(), headerPerm); err != nil {
		return fmt.Errorf("write %s: %w", args.Output, err)
	}

	slog.Debug("Wrote aggregate header", "output", args.Output, "kind", args.Kind, "count", len(args.Names))

	return nil
}
