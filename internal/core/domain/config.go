package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// OpenPolicy controls whether the artifact is opened after a successful compilation.
type OpenPolicy string

const (
	// OpenAlways opens the artifact after every successful compilation.
	OpenAlways OpenPolicy = "always"
	// OpenNever never opens the artifact.
	OpenNever OpenPolicy = "never"
)

// ParseOpenPolicy validates name. An empty name yields OpenAlways.
func ParseOpenPolicy(name string) (OpenPolicy, error) {
	switch p := OpenPolicy(strings.TrimSpace(name)); p {
	case "":
		return OpenAlways, nil
	case OpenAlways, OpenNever:
		return p, nil
	default:
		return "", zerr.Wrap(ErrUnknownOpenPolicy, fmt.Sprintf("open policy %q", name))
	}
}

// Config is the resolved project configuration.
type Config struct {
	// Root is the project root, the directory holding texwatch.yaml.
	Root string
	// Path is the configuration file the values came from; empty when defaults are in use.
	Path string
	// Engine is the compiler engine.
	Engine Engine
	// DocumentsDir is the absolute directory holding .tex sources.
	DocumentsDir string
	// OutputDir is the absolute artifact directory.
	OutputDir string
	// Open is the artifact open policy.
	Open OpenPolicy
}

// DefaultConfig returns the configuration used when root has no texwatch.yaml.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:         root,
		Engine:       DefaultEngine,
		DocumentsDir: filepath.Join(root, DefaultDocumentsDir),
		OutputDir:    filepath.Join(root, DefaultOutputDir),
		Open:         OpenAlways,
	}
}

// ConfigPath returns the path texwatch.yaml is saved to.
func (c *Config) ConfigPath() string {
	if c.Path != "" {
		return c.Path
	}
	return filepath.Join(c.Root, ConfigFileName)
}
