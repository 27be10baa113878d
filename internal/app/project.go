package app

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/texwatch/internal/adapters/scaffold"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// List returns the documents of the current project relative to the working
// directory.
func (a *App) List() ([]string, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	docs, err := a.configLoader.Documents(cfg)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return docs, nil
	}
	for i, doc := range docs {
		if rel, err := filepath.Rel(cwd, doc); err == nil {
			docs[i] = rel
		}
	}
	return docs, nil
}

// Engine returns the configured engine of the current project.
func (a *App) Engine() (domain.Engine, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.Engine, nil
}

// SetEngine validates name and persists it as the project's engine.
func (a *App) SetEngine(name string) (domain.Engine, error) {
	engine, err := domain.ParseEngine(name)
	if err != nil {
		return "", err
	}

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}

	cfg.Engine = engine
	if err := a.configLoader.Save(cfg); err != nil {
		return "", err
	}

	a.logger.Info(fmt.Sprintf("engine set to %s", engine))
	return engine, nil
}

// NewProject creates the project name in the working directory and returns
// its path. An unknown template falls back to the default one.
func (a *App) NewProject(name, template string) (string, error) {
	if template == "" {
		template = scaffold.DefaultTemplate
	}
	if !slices.Contains(a.scaffolder.Templates(), template) {
		a.logger.Warn(fmt.Sprintf("unknown template %q, using %q", template, scaffold.DefaultTemplate))
		template = scaffold.DefaultTemplate
	}

	path, err := a.scaffolder.Create(".", name, template)
	if err != nil {
		return "", err
	}

	a.logger.Info(fmt.Sprintf("created project %s", name))
	return path, nil
}
