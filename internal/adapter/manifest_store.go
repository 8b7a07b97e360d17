package adapter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "glslpack.dev/pkg/glslpack/internal/model"
)

// ErrInvalidManifest is returned for a manifest that cannot drive a build.
var ErrInvalidManifest = errors.New("invalid manifest")

// ManifestStore loads build manifests.
type ManifestStore interface {
	// LoadManifest reads the manifest at path. Relative paths inside it are
	// returned resolved against the manifest's directory.
	LoadManifest(path m.Path) (m.Manifest, error)
}

// YAMLManifestStore reads manifests written in YAML.
type YAMLManifestStore struct {
	fs SourceFSAdapter
}

// NewYAMLManifestStore constructs a manifest store reading through fs.
func NewYAMLManifestStore(fs SourceFSAdapter) *YAMLManifestStore {
	return &YAMLManifestStore{fs: fs}
}

// LoadManifest decodes and validates the manifest at path.
func (s *YAMLManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Manifest{}, err
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("%s: %w: %w", path, ErrInvalidManifest, err)
	}

	if err := validateManifest(manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Dir(string(path))
	manifest.Output = resolve(base, manifest.Output)

	for i := range manifest.Shaders {
		manifest.Shaders[i].Source = resolve(base, manifest.Shaders[i].Source)
	}

	for i := range manifest.Assets {
		manifest.Assets[i].Source = resolve(base, manifest.Assets[i].Source)
	}

	return manifest, nil
}

func validateManifest(manifest m.Manifest) error {
	if manifest.Output == "" {
		return fmt.Errorf("missing output: %w", ErrInvalidManifest)
	}

	for kind, entries := range map[m.EntryKind][]m.Entry{m.EntryShader: manifest.Shaders, m.EntryAsset: manifest.Assets} {
		seen := make(map[string]struct{}, len(entries))

		for i, entry := range entries {
			if entry.Name == "" || entry.Source == "" {
				return fmt.Errorf("%s[%d]: name and source are required: %w", kind, i, ErrInvalidManifest)
			}

			if strings.ContainsAny(entry.Name, `/\`) {
				return fmt.Errorf("%s: name %q contains a path separator: %w", kind, entry.Name, ErrInvalidManifest)
			}

			if _, dup := seen[entry.Name]; dup {
				return fmt.Errorf("%s: duplicate name %q: %w", kind, entry.Name, ErrInvalidManifest)
			}

			seen[entry.Name] = struct{}{}
		}
	}

	return nil
}

func resolve(base string, p m.Path) m.Path {
	if p == "" || filepath.IsAbs(string(p)) {
		return p
	}

	return m.Path(filepath.Join(base, string(p)))
}
