// Package scaffold creates new texwatch projects from embedded templates.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTemplate is used by callers that fall back from an unknown template.
const DefaultTemplate = "article"

const templateExt = ".tex.tmpl"

//go:embed templates/*.tex.tmpl
var templateFS embed.FS

// Scaffolder implements ports.Scaffolder. A project is laid out as
//
//	<name>/document/main.tex
//	<name>/output/
//	<name>/texwatch.yaml
type Scaffolder struct {
	config    ports.ConfigLoader
	templates *template.Template
}

// New creates a Scaffolder that writes project configuration through config.
func New(config ports.ConfigLoader) (*Scaffolder, error) {
	tmpl, err := template.New("").Delims("<<", ">>").ParseFS(templateFS, "templates/*"+templateExt)
	if err != nil {
		return nil, zerr.Wrap(err, "parse project templates")
	}
	return &Scaffolder{config: config, templates: tmpl}, nil
}

// Templates lists the available template names, sorted.
func (s *Scaffolder) Templates() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		if name, ok := strings.CutSuffix(t.Name(), templateExt); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Create writes a new project named name below parent. Nothing is left
// behind when a step fails.
func (s *Scaffolder) Create(parent, name, templateName string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	tmpl := s.templates.Lookup(templateName + templateExt)
	if tmpl == nil {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownTemplate, "new project"), "template", templateName)
	}

	project, err := filepath.Abs(filepath.Join(parent, name))
	if err != nil {
		return "", errors.Join(zerr.With(zerr.Wrap(domain.ErrFailedToResolvePath, "project"), "name", name), err)
	}

	if _, err := os.Lstat(project); err == nil {
		return "", zerr.With(zerr.Wrap(domain.ErrProjectExists, "new project"), "path", project)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", errors.Join(zerr.With(zerr.Wrap(domain.ErrProjectCreateFailed, "stat"), "path", project), err)
	}

	if err := s.populate(project, name, tmpl); err != nil {
		_ = os.RemoveAll(project)
		return "", errors.Join(zerr.With(zerr.Wrap(domain.ErrProjectCreateFailed, "new project"), "path", project), err)
	}
	return project, nil
}

func (s *Scaffolder) populate(project, title string, tmpl *template.Template) error {
	cfg := domain.DefaultConfig(project)
	cfg.Engine = domain.EnginePDFLaTeX

	for _, dir := range []string{cfg.DocumentsDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return err
		}
	}

	mainPath := filepath.Join(cfg.DocumentsDir, domain.DefaultMainDocument)
	// #nosec G304 -- mainPath is below the freshly created project directory
	f, err := os.OpenFile(mainPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(f, struct{ Title string }{Title: title}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return s.config.Save(cfg)
}

func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return zerr.Wrap(domain.ErrProjectCreateFailed, "project name is empty")
	case name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsRune(name, '/'):
		return zerr.With(zerr.Wrap(domain.ErrProjectCreateFailed, fmt.Sprintf("invalid project name %q", name)), "name", name)
	}
	return nil
}
