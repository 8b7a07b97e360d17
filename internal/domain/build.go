package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"glslpack.dev/pkg/glslpack/internal/cheader"
	"glslpack.dev/pkg/glslpack/internal/glsl"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

// BuildArgs contains the arguments for a manifest-driven build.
type BuildArgs struct {
	Manifest m.Path
	// Parallel bounds the number of entries processed at once; zero or less
	// means no bound.
	Parallel int
	Options  glsl.Options
	// GLSLVersion applies when the manifest does not name one.
	GLSLVersion string
}

func (w *workflow) Build(ctx context.Context, args BuildArgs) (m.BuildReport, error) {
	manifest, err := w.LoadManifest(args.Manifest)
	if err != nil {
		return m.BuildReport{}, fmt.Errorf("load manifest: %w", err)
	}

	version := manifest.GLSLVersion
	if version == "" {
		version = args.GLSLVersion
	}

	slog.Info("Starting build",
		"manifest", args.Manifest,
		"shaders", len(manifest.Shaders),
		"assets", len(manifest.Assets),
		"parallel", args.Parallel)

	entries := make([]m.BuildEntry, len(manifest.Shaders)+len(manifest.Assets))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, entry := range manifest.Shaders {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			built, err := w.Shader(groupCtx, ShaderArgs{
				Source:      entry.Source,
				Name:        entry.Name,
				Output:      w.entryOutput(manifest.Output, m.EntryShader, entry.Name),
				Options:     args.Options,
				GLSLVersion: version,
			})
			if err != nil {
				return fmt.Errorf("shader %s: %w", entry.Name, err)
			}

			entries[i] = built

			return nil
		})
	}

	offset := len(manifest.Shaders)

	for i, entry := range manifest.Assets {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			built, err := w.asset(groupCtx, manifest.Output, entry)
			if err != nil {
				return fmt.Errorf("asset %s: %w", entry.Name, err)
			}

			entries[offset+i] = built

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Build failed", "manifest", args.Manifest, "error", err)
		return m.BuildReport{}, err
	}

	report := m.BuildReport{Entries: entries}

	aggregates := []struct {
		kind    cheader.Kind
		entries []m.Entry
	}{
		{kind: cheader.KindShaders, entries: manifest.Shaders},
		{kind: cheader.KindAssets, entries: manifest.Assets},
	}

	for _, agg := range aggregates {
		if len(agg.entries) == 0 {
			continue
		}

		names := make([]string, 0, len(agg.entries))
		for _, entry := range agg.entries {
			names = append(names, entry.Name)
		}

		output := w.JoinPath(string(manifest.Output), string(agg.kind)+".h")
		if err := w.Aggregate(ctx, AggregateArgs{Output: output, Kind: agg.kind, Names: names}); err != nil {
			return m.BuildReport{}, err
		}

		report.Aggregates = append(report.Aggregates, output)
	}

	slog.Info("Build finished", "manifest", args.Manifest, "entries", len(report.Entries), "aggregates", len(report.Aggregates))

	return report, nil
}

func (w *workflow) asset(ctx context.Context, outputDir m.Path, entry m.Entry) (m.BuildEntry, error) {
	output := w.entryOutput(outputDir, m.EntryAsset, entry.Name)

	size, err := w.header(ctx, HeaderArgs{
		Output:   output,
		File:     entry.Source,
		Name:     entry.Name,
		CharType: entry.Type,
	})
	if err != nil {
		return m.BuildEntry{}, err
	}

	return m.BuildEntry{
		Name:       entry.Name,
		Kind:       m.EntryAsset,
		Source:     entry.Source,
		Output:     output,
		InputSize:  size,
		OutputSize: size,
	}, nil
}

func (w *workflow) entryOutput(outputDir m.Path, kind m.EntryKind, name string) m.Path {
	return w.JoinPath(string(outputDir), string(kind), name+".h")
}
