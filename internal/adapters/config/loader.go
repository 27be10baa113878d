// Package config loads and saves the texwatch.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a Loader on the host filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a Loader on the given filesystem.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load walks up from cwd to the nearest texwatch.yaml. When none exists the
// defaults apply with cwd as the project root.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, errors.Join(zerr.With(zerr.Wrap(domain.ErrFailedToResolvePath, "working directory"), "cwd", cwd), err)
	}

	configPath, found := l.findConfiguration(absCwd)
	if !found {
		return domain.DefaultConfig(absCwd), nil
	}

	var pf Projectfile
	empty, err := l.readProjectfile(configPath, &pf)
	if err != nil {
		return nil, err
	}
	if empty {
		l.Logger.Warn(fmt.Sprintf("%s is empty, using defaults", configPath))
	}

	return buildConfig(configPath, &pf)
}

// Save writes the values of cfg to its texwatch.yaml. Keys already present
// keep their position and comments; missing keys are appended.
func (l *Loader) Save(cfg *domain.Config) error {
	path := cfg.ConfigPath()

	var doc yaml.Node
	data, err := l.fs.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "existing config"), "path", path), err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "existing config"), "path", path), err)
	}

	if err := mergeProjectfile(&doc, projectfileFrom(cfg)); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, "encode config"), "path", path), err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, "encode config"), "path", path), err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, "encode config"), "path", path), err)
	}

	if err := l.fs.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, "write config"), "path", path), err)
	}
	return nil
}

// Documents lists the .tex files directly inside cfg.DocumentsDir.
func (l *Loader) Documents(cfg *domain.Config) ([]string, error) {
	entries, err := l.fs.ReadDir(cfg.DocumentsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDocumentsDirMissing, "list documents"), "dir", cfg.DocumentsDir)
		}
		return nil, errors.Join(zerr.With(zerr.Wrap(domain.ErrDocumentsDirMissing, "list documents"), "dir", cfg.DocumentsDir), err)
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != domain.SourceExt {
			continue
		}
		docs = append(docs, filepath.Join(cfg.DocumentsDir, entry.Name()))
	}
	return docs, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	for dir := cwd; ; {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// readProjectfile decodes path into pf, rejecting unknown keys. It reports
// whether the file held no document at all.
func (l *Loader) readProjectfile(path string, pf *Projectfile) (bool, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return false, errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "read config"), "path", path), err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(pf); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "decode config"), "path", path), err)
	}
	return false, nil
}

func buildConfig(path string, pf *Projectfile) (*domain.Config, error) {
	engine, err := domain.ParseEngine(pf.Engine)
	if err != nil {
		return nil, errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "engine"), "path", path), err)
	}

	open, err := domain.ParseOpenPolicy(pf.Open)
	if err != nil {
		return nil, errors.Join(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "open"), "path", path), err)
	}

	root := filepath.Dir(path)
	return &domain.Config{
		Root:         root,
		Path:         path,
		Engine:       engine,
		DocumentsDir: resolveDir(root, pf.Documents, domain.DefaultDocumentsDir),
		OutputDir:    resolveDir(root, pf.Output, domain.DefaultOutputDir),
		Open:         open,
	}, nil
}

// resolveDir returns configured relative to root, or fallback when unset.
func resolveDir(root, configured, fallback string) string {
	configured = strings.TrimSpace(configured)
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(root, configured)
}

// relativeDir is the inverse of resolveDir for directories below root.
func relativeDir(root, dir string) string {
	if rel, err := filepath.Rel(root, dir); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return dir
}

func projectfileFrom(cfg *domain.Config) *Projectfile {
	return &Projectfile{
		Engine:    cfg.Engine.String(),
		Documents: relativeDir(cfg.Root, cfg.DocumentsDir),
		Output:    relativeDir(cfg.Root, cfg.OutputDir),
		Open:      string(cfg.Open),
	}
}

// mergeProjectfile writes the fields of pf into doc, creating the document
// when doc is empty or not a mapping.
func mergeProjectfile(doc *yaml.Node, pf *Projectfile) error {
	var fields yaml.Node
	if err := fields.Encode(pf); err != nil {
		return err
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		*doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{&fields}}
		return nil
	}

	mapping := doc.Content[0]
	for i := 0; i+1 < len(fields.Content); i += 2 {
		setMappingValue(mapping, fields.Content[i], fields.Content[i+1])
	}
	return nil
}

func setMappingValue(mapping, key, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key.Value {
			existing := mapping.Content[i+1]
			value.HeadComment = existing.HeadComment
			value.LineComment = existing.LineComment
			value.FootComment = existing.FootComment
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content, key, value)
}
