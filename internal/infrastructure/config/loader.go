package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameFile is the name of the balance file inside the config directory
const GameFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads and validates game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, GameFile, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s: %w", l.basePath, GameFile, err)
	}

	return cfg, nil
}

// Parse decodes and validates a game config document
func Parse(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &cfg, nil
}
