package glsl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadShader(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return string(data)
}

func TestMinify_LocalVariable(t *testing.T) {
	result, err := Minify("void main(){ float x = 1.0; // comment\n }", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "void main(){float a=1.0;}", result.Output)
	assert.Equal(t, RenameTable{"x": "a"}, result.Renames)
}

func TestMinify_UniformBlockUntouched(t *testing.T) {
	src := "layout(std140) uniform Camera { mat4 view; } uCam;\nvoid main() {\ngl_Position = uCam.view * vec4(0.0);\n}"

	result, err := Minify(src, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "layout(std140)uniform Camera{mat4 view;}uCam;void main(){gl_Position=uCam.view*vec4(0.0);}", result.Output)
	assert.Empty(t, result.Renames)
	assert.True(t, result.Protected.UniformBlocks.Has("Camera"))
	assert.True(t, result.Protected.UniformBlocks.Has("uCam"))
	assert.True(t, result.Protected.UniformBlockMembers.Has("view"))
}

func TestMinify_MacroParameters(t *testing.T) {
	src := "#define SQ(x) x*x\nvoid main() {\nfloat x = SQ(2.0);\n}"

	t.Run("default define spacing", func(t *testing.T) {
		result, err := Minify(src, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, `#define SQ (x)x*x\nvoid main(){float x=SQ(2.0);}`, result.Output)
		assert.Empty(t, result.Renames)
	})

	t.Run("function-like macros preserved", func(t *testing.T) {
		opts := DefaultOptions()
		opts.PreserveFunctionMacros = true

		result, err := Minify(src, opts)
		require.NoError(t, err)

		assert.Equal(t, `#define SQ(x)x*x\nvoid main(){float x=SQ(2.0);}`, result.Output)
	})
}

func TestMinify_FunctionNamesKept(t *testing.T) {
	src := "float helper(float t) {\nreturn t * 2.0;\n}\nvoid main() {\nfloat r = helper(1.0);\n}"

	result, err := Minify(src, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "float helper(float b){return b*2.0;}void main(){float a=helper(1.0);}", result.Output)
	assert.Equal(t, RenameTable{"r": "a", "t": "b"}, result.Renames)
}

func TestMinify_WholeTokenSafety(t *testing.T) {
	src := "void main() {\nfloat value = 1.0;\nfloat values = value;\n}"

	result, err := Minify(src, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "void main(){float a=1.0;float b=a;}", result.Output)
}

func TestMinify_Collisions(t *testing.T) {
	src := "struct S { float a; };\nvoid main() {\nS s;\nfloat value = s.a;\n}"

	t.Run("labels avoid identifiers left in place", func(t *testing.T) {
		result, err := Minify(src, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, RenameTable{"s": "b", "value": "c"}, result.Renames)
		assert.Equal(t, "struct S{float a;};void main(){S b;float c=b.a;}", result.Output)
	})

	t.Run("plain sequence when disabled", func(t *testing.T) {
		result, err := Minify(src, Options{})
		require.NoError(t, err)

		assert.Equal(t, RenameTable{"s": "a", "value": "b"}, result.Renames)
		assert.Equal(t, "struct S{float a;};void main(){S a;float b=a.a;}", result.Output)
	})
}

func TestMinify_LayoutQualifiersKept(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "image format",
			src:  "layout(rgba8, binding = 0) uniform image2D img;\nvoid main() {\nimageStore(img, ivec2(0), vec4(1.0));\n}",
			want: "layout(rgba8,binding=0)uniform image2D a;void main(){imageStore(a,ivec2(0),vec4(1.0));}",
		},
		{
			name: "tessellation control",
			src:  "layout(vertices = 3) out;\nvoid main() {}",
			want: "layout(vertices=3)out;void main(){}",
		},
		{
			name: "transform feedback",
			src:  "layout(xfb_buffer = 0, xfb_offset = 0) out vec3 pos;\nvoid main() {\npos = vec3(0.0);\n}",
			want: "layout(xfb_buffer=0,xfb_offset=0)out vec3 a;void main(){a=vec3(0.0);}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Minify(tt.src, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Output)
		})
	}
}

func TestMinify_Properties(t *testing.T) {
	shaders := map[string]string{
		"struct": "struct Ray {\nvec3 origin;\nvec3 dir;\n};\nvoid main() {\nRay ray;\nfloat t = 0.5;\nvec3 hit = ray.origin + ray.dir * t;\n}",
		"uniform block": "layout(std140) uniform Scene {\nmat4 view;\nfloat time;\n} scene;\nvoid main() {\nfloat phase = scene.time;\nmat4 m = scene.view;\n}",
		"macros": "#define STEPS 4\n#define MIX(a, b) mix(a, b, 0.5)\nvoid main() {\nfloat acc = 0.0;\nfor (int step = 0; step < STEPS; step++) {\nacc = MIX(acc, 1.0);\n}\n}",
		"compute layout": "#version 430\nlayout(local_size_x = 8, local_size_y = 8) in;\nlayout(r32f, binding = 1) uniform image2D heights;\nvoid main() {\nivec2 cell = ivec2(gl_GlobalInvocationID.xy);\nfloat h = imageLoad(heights, cell).r;\nimageStore(heights, cell, vec4(h * 2.0));\n}",
		"stage interface": "in VertexOut {\nvec3 normal;\nvec2 uv;\n} fs_in;\nout vec4 color;\nvoid main() {\nvec3 n = normalize(fs_in.normal);\ncolor = vec4(n, 1.0);\n}",
	}

	for name, src := range shaders {
		t.Run(name, func(t *testing.T) {
			result, err := Minify(src, DefaultOptions())
			require.NoError(t, err)
			require.NotEmpty(t, result.Renames)

			seen := NameSet{}
			for original, label := range result.Renames {
				assert.False(t, result.Protected.Has(original), original)
				assert.False(t, IsReserved(original), original)
				assert.False(t, seen.Has(label), label)
				seen.Add(label)
			}

			again, err := Minify(src, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, result.Output, again.Output)
		})
	}
}

func TestMinify_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		cause error
	}{
		{"unterminated comment", "void main() {}\n/* open", ErrUnterminatedComment},
		{"unclosed brace", "void main() {\nfloat x;", ErrUnbalancedBraces},
		{"stray brace", "}\nvoid main() {}", ErrUnbalancedBraces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Minify(tt.src, DefaultOptions())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedSource))
			assert.True(t, errors.Is(err, tt.cause))
		})
	}
}

func TestMinify_Lenient(t *testing.T) {
	opts := DefaultOptions()
	opts.Lenient = true

	result, err := Minify("void main() {\nfloat x;", opts)
	require.NoError(t, err)
	assert.Equal(t, "void main(){float a;", result.Output)

	result, err = Minify("float y; /* open", opts)
	require.NoError(t, err)
	assert.Equal(t, "float b;/*a", result.Output)
	assert.Equal(t, RenameTable{"open": "a", "y": "b"}, result.Renames)
}

func TestMinify_Shader(t *testing.T) {
	src := loadShader(t, "lighting.frag")

	result, err := Minify(src, DefaultOptions())
	require.NoError(t, err)

	t.Run("renames only shader locals", func(t *testing.T) {
		keys := make([]string, 0, len(result.Renames))
		for name := range result.Renames {
			keys = append(keys, name)
		}

		assert.ElementsMatch(t, []string{
			"FragColor", "albedo", "diffuse", "dist", "index",
			"light", "normal", "ratio", "toLight", "total",
		}, keys)
	})

	t.Run("protected names never renamed", func(t *testing.T) {
		for name := range result.Renames {
			assert.False(t, result.Protected.Has(name), name)
			assert.False(t, IsReserved(name), name)
		}
	})

	t.Run("short names are unique", func(t *testing.T) {
		seen := NameSet{}
		for _, label := range result.Renames {
			assert.False(t, seen.Has(label), label)
			seen.Add(label)
		}
	})

	t.Run("layout of the output", func(t *testing.T) {
		out := result.Output

		assert.True(t, strings.HasPrefix(out, `#version 330 core\n#define MAX_LIGHTS 8\n#define SATURATE (v)clamp(v,0.0,1.0)\nstruct Light{`))
		assert.NotContains(t, out, "\n")
		assert.NotContains(t, out, "//")
		assert.NotContains(t, out, "/*")
		assert.Contains(t, out, "uLights.lights[")
		assert.Contains(t, out, "uLights.count")
		assert.Contains(t, out, ".rgb")
		assert.Contains(t, out, "attenuation(")
	})

	t.Run("deterministic", func(t *testing.T) {
		again, err := Minify(src, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, result.Output, again.Output)
		assert.Equal(t, result.Renames, again.Renames)
	})
}
