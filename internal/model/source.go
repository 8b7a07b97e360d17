// Package model defines the data structures shared by the glslpack layers.
package model

// Path represents a file system path.
type Path string

// EntryKind tells shader entries from raw asset entries.
type EntryKind string

const (
	// EntryShader is a GLSL (or WGSL) source minified before embedding.
	EntryShader EntryKind = "shaders"
	// EntryAsset is embedded byte for byte.
	EntryAsset EntryKind = "assets"
)

// Entry is one input of a build manifest.
type Entry struct {
	// Name becomes both the header file name and, upper-cased, the array name.
	Name   string `yaml:"name"`
	Source Path   `yaml:"source"`
	// Type is the array element type for assets; shaders are always char.
	Type string `yaml:"type,omitempty"`
}

// Manifest describes a batch build. Relative paths are resolved against the
// directory holding the manifest.
type Manifest struct {
	// Output is the directory receiving shaders/, assets/ and the aggregate
	// headers.
	Output      Path    `yaml:"output"`
	GLSLVersion string  `yaml:"glsl_version,omitempty"`
	Shaders     []Entry `yaml:"shaders"`
	Assets      []Entry `yaml:"assets"`
}
