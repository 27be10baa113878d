package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/engine/session"
	"go.trai.ch/zerr"
)

// TargetOptions selects the document and overrides the project configuration
// for one invocation.
type TargetOptions struct {
	// File is the document to compile. Empty picks the only .tex file in
	// the documents directory.
	File string
	// Engine overrides the configured engine when set.
	Engine string
	// OutputDir overrides the configured artifact directory when set.
	OutputDir string
	// NoOpen keeps the artifact from being opened after a successful compilation.
	NoOpen bool
}

// prepare loads the configuration and resolves opts into session options.
func (a *App) prepare(opts TargetOptions) (*domain.Config, session.Options, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, session.Options{}, zerr.Wrap(err, "failed to load configuration")
	}

	engine := cfg.Engine
	if opts.Engine != "" {
		if engine, err = domain.ParseEngine(opts.Engine); err != nil {
			return nil, session.Options{}, err
		}
	}

	outputDir := cfg.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}

	open := cfg.Open
	if opts.NoOpen {
		open = domain.OpenNever
	}

	file, err := a.resolveDocument(cfg, opts.File)
	if err != nil {
		return nil, session.Options{}, err
	}

	target, err := domain.NewWatchTarget(file, outputDir)
	if err != nil {
		return nil, session.Options{}, err
	}

	return cfg, session.Options{Target: target, Engine: engine, Open: open}, nil
}

// resolveDocument returns file when it names an existing path, the same name
// in the documents directory otherwise, and the only document when file is
// empty.
func (a *App) resolveDocument(cfg *domain.Config, file string) (string, error) {
	if file != "" {
		if _, err := os.Stat(file); err == nil || filepath.IsAbs(file) {
			return file, nil
		}
		candidate := filepath.Join(cfg.DocumentsDir, file)
		if filepath.Ext(candidate) == "" {
			candidate += domain.SourceExt
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		return file, nil
	}

	docs, err := a.configLoader.Documents(cfg)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentsDirMissing) {
			return "", errors.Join(zerr.With(zerr.Wrap(domain.ErrNoDocuments, "no file given"), "dir", cfg.DocumentsDir), err)
		}
		return "", err
	}

	switch len(docs) {
	case 0:
		return "", zerr.With(zerr.Wrap(domain.ErrNoDocuments, "no file given"), "dir", cfg.DocumentsDir)
	case 1:
		return docs[0], nil
	default:
		names := make([]string, len(docs))
		for i, doc := range docs {
			names[i] = filepath.Base(doc)
		}
		return "", zerr.With(zerr.Wrap(domain.ErrDocumentAmbiguous, "no file given"), "candidates", strings.Join(names, ", "))
	}
}
