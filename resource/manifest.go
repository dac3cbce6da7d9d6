package resource

import (
	_ "embed" // go:embed only allowed in Go files that import "embed"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Kind is the type of an asset.
type Kind string

const (
	KindFont    Kind = "font"
	KindMusic   Kind = "music"
	KindSound   Kind = "sound"
	KindTexture Kind = "texture"
)

// Asset is one entry of the manifest.
type Asset struct {
	Key  string `yaml:"key"`
	Kind Kind   `yaml:"kind"`
	Path string `yaml:"path"` // relative to the manifest's base path
}

// Manifest lists the assets to load, in loading order.
type Manifest struct {
	BasePath string  `yaml:"base_path"`
	Assets   []Asset `yaml:"assets"`
}

//go:embed manifest.yaml
var manifestBytes []byte

// DefaultManifest returns the game's fixed asset list.
func DefaultManifest() *Manifest {
	m, err := ParseManifest(manifestBytes)
	if err != nil {
		log.Fatal("embedded manifest is invalid", "err", err)
	}
	return m
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	seen := make(map[string]bool, len(m.Assets))
	for i, a := range m.Assets {
		if a.Key == "" {
			return nil, fmt.Errorf("asset %d has no key", i)
		}
		if a.Path == "" {
			return nil, fmt.Errorf("asset %q has no path", a.Key)
		}
		switch a.Kind {
		case KindFont, KindMusic, KindSound, KindTexture:
		default:
			return nil, fmt.Errorf("asset %q has unknown kind %q", a.Key, a.Kind)
		}
		if seen[a.Key] {
			return nil, fmt.Errorf("duplicate asset key %q", a.Key)
		}
		seen[a.Key] = true
	}
	return &m, nil
}

// FullPath joins the base path and the asset's relative path.
func (m *Manifest) FullPath(a Asset) string {
	if m.BasePath == "" {
		return a.Path
	}
	return filepath.Join(m.BasePath, a.Path)
}
