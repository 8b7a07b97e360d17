package domain

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslpack.dev/pkg/glslpack/internal/glsl"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

const buildManifest = `output: include
shaders:
  - name: basic_vert
    source: shaders/basic.vert
  - name: basic_frag
    source: shaders/basic.frag
assets:
  - name: palette
    source: assets/palette.bin
    type: char
`

func writeBuildTree(t *testing.T, frag string) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "glslpack.build.yaml"), buildManifest)
	writeFile(t, filepath.Join(root, "shaders", "basic.vert"), "#version 330\nlayout(location = 0) in vec3 aPos;\nvoid main(){ gl_Position = vec4(aPos, 1.0); }\n")
	writeFile(t, filepath.Join(root, "shaders", "basic.frag"), frag)
	writeFile(t, filepath.Join(root, "assets", "palette.bin"), "rgb")

	return root
}

func TestWorkflow_Build(t *testing.T) {
	wf := newTestWorkflow()

	t.Run("builds every entry then the aggregates", func(t *testing.T) {
		root := writeBuildTree(t, "out vec4 color;\nvoid main(){ color = vec4(1.0); }\n")

		report, err := wf.Build(context.Background(), BuildArgs{
			Manifest: m.Path(filepath.Join(root, "glslpack.build.yaml")),
			Parallel: 2,
			Options:  glsl.DefaultOptions(),
		})
		require.NoError(t, err)

		require.Len(t, report.Entries, 3)
		assert.Equal(t, "basic_vert", report.Entries[0].Name)
		assert.Equal(t, "basic_frag", report.Entries[1].Name)
		assert.Equal(t, "palette", report.Entries[2].Name)
		assert.Equal(t, m.EntryAsset, report.Entries[2].Kind)
		assert.Equal(t, 3, report.Entries[2].OutputSize)

		include := filepath.Join(root, "include")
		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(include, "shaders.h")),
			m.Path(filepath.Join(include, "assets.h")),
		}, report.Aggregates)

		assert.FileExists(t, filepath.Join(include, "shaders", "basic_vert.h"))
		assert.FileExists(t, filepath.Join(include, "shaders", "basic_frag.h"))
		assert.Contains(t, readFile(t, m.Path(filepath.Join(include, "assets", "palette.h"))), "static const char PALETTE[]")

		shaders := readFile(t, m.Path(filepath.Join(include, "shaders.h")))
		assert.Contains(t, shaders, "#include \"./shaders/basic_vert.h\"\n#include \"./shaders/basic_frag.h\"\n")
	})

	t.Run("a failing entry stops the aggregates", func(t *testing.T) {
		root := writeBuildTree(t, "void main(){ /* open\n")

		_, err := wf.Build(context.Background(), BuildArgs{
			Manifest: m.Path(filepath.Join(root, "glslpack.build.yaml")),
			Parallel: 1,
			Options:  glsl.DefaultOptions(),
		})
		require.ErrorIs(t, err, glsl.ErrMalformedSource)
		assert.ErrorContains(t, err, "basic_frag")

		assert.NoFileExists(t, filepath.Join(root, "include", "shaders.h"))
		assert.NoFileExists(t, filepath.Join(root, "include", "assets.h"))
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := wf.Build(context.Background(), BuildArgs{Manifest: m.Path(filepath.Join(t.TempDir(), "none.yaml"))})
		require.Error(t, err)
	})
}
