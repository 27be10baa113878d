package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texwatch/internal/adapters/config"
	"go.trai.ch/texwatch/internal/core/domain"
	"go.trai.ch/texwatch/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()
	loader, _ := newLoader(t)

	cfg, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultConfig(root), cfg)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), cfg.ConfigPath())
}

func TestLoad_File(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), `
engine: xelatex
documents: src
output: build/pdf
open: never
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Root:         root,
		Path:         filepath.Join(root, domain.ConfigFileName),
		Engine:       domain.EngineXeLaTeX,
		DocumentsDir: filepath.Join(root, "src"),
		OutputDir:    filepath.Join(root, "build", "pdf"),
		Open:         domain.OpenNever,
	}, cfg)
}

func TestLoad_PartialFileUsesDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "engine: lualatex\n")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, domain.EngineLuaLaTeX, cfg.Engine)
	assert.Equal(t, filepath.Join(root, domain.DefaultDocumentsDir), cfg.DocumentsDir)
	assert.Equal(t, filepath.Join(root, domain.DefaultOutputDir), cfg.OutputDir)
	assert.Equal(t, domain.OpenAlways, cfg.Open)
}

func TestLoad_AbsoluteDirs(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "engine: pdflatex\noutput: "+out+"\n")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, out, cfg.OutputDir)
}

func TestLoad_DiscoversParent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "engine: lualatex\n")
	nested := filepath.Join(root, "document", "chapters")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	loader, _ := newLoader(t)

	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, domain.EngineLuaLaTeX, cfg.Engine)
}

func TestLoad_RelativeCwd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "engine: xelatex\n")
	t.Chdir(root)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(".")
	require.NoError(t, err)
	assert.Equal(t, domain.EngineXeLaTeX, cfg.Engine)
	assert.True(t, filepath.IsAbs(cfg.Root))
}

func TestLoad_EmptyFileWarns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "")
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEngine, cfg.Engine)
	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), cfg.Path)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIs  []error
	}{
		{
			name:    "unknown engine",
			content: "engine: tex\n",
			wantIs:  []error{domain.ErrConfigParseFailed, domain.ErrUnknownEngine},
		},
		{
			name:    "unknown open policy",
			content: "open: sometimes\n",
			wantIs:  []error{domain.ErrConfigParseFailed, domain.ErrUnknownOpenPolicy},
		},
		{
			name:    "unknown key",
			content: "engine: pdflatex\nviewer: zathura\n",
			wantIs:  []error{domain.ErrConfigParseFailed},
		},
		{
			name:    "malformed yaml",
			content: "engine: [pdflatex\n",
			wantIs:  []error{domain.ErrConfigParseFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, domain.ConfigFileName)
			writeFile(t, path, tt.content)
			loader, _ := newLoader(t)

			_, err := loader.Load(root)
			require.Error(t, err)
			for _, target := range tt.wantIs {
				require.ErrorIs(t, err, target)
			}

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, path, zErr.Metadata()["path"])
		})
	}
}

func TestSave_NewFile(t *testing.T) {
	root := t.TempDir()
	loader, _ := newLoader(t)

	cfg := domain.DefaultConfig(root)
	cfg.Engine = domain.EngineLuaLaTeX
	require.NoError(t, loader.Save(cfg))

	data, err := os.ReadFile(filepath.Join(root, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "engine: lualatex\ndocuments: document\noutput: output\nopen: always\n", string(data))

	reloaded, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, domain.EngineLuaLaTeX, reloaded.Engine)
}

func TestSave_PreservesCommentsAndKeys(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, domain.ConfigFileName)
	writeFile(t, path, "# thesis settings\nengine: pdflatex\noutput: pdf\n")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(root)
	require.NoError(t, err)
	cfg.Engine = domain.EngineXeLaTeX
	require.NoError(t, loader.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# thesis settings")
	assert.Contains(t, string(data), "engine: xelatex")
	assert.Contains(t, string(data), "output: pdf")

	reloaded, err := loader.Load(root)
	require.NoError(t, err)
	assert.Equal(t, domain.EngineXeLaTeX, reloaded.Engine)
	assert.Equal(t, filepath.Join(root, "pdf"), reloaded.OutputDir)
}

func TestSave_MalformedExisting(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), "engine: [\n")
	loader, _ := newLoader(t)

	err := loader.Save(domain.DefaultConfig(root))
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

type readOnlyFS struct {
	*config.OSFS
}

func (readOnlyFS) WriteFile(string, []byte, fs.FileMode) error {
	return fs.ErrPermission
}

func TestSave_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), readOnlyFS{config.NewOSFS()})

	err := loader.Save(domain.DefaultConfig(t.TempDir()))
	require.ErrorIs(t, err, domain.ErrConfigWriteFailed)
	require.ErrorIs(t, err, fs.ErrPermission)
}

func TestDocuments(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig(root)
	writeFile(t, filepath.Join(cfg.DocumentsDir, "thesis.tex"), "")
	writeFile(t, filepath.Join(cfg.DocumentsDir, "abstract.tex"), "")
	writeFile(t, filepath.Join(cfg.DocumentsDir, "refs.bib"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.DocumentsDir, "figures.tex"), domain.DirPerm))
	loader, _ := newLoader(t)

	docs, err := loader.Documents(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(cfg.DocumentsDir, "abstract.tex"),
		filepath.Join(cfg.DocumentsDir, "thesis.tex"),
	}, docs)
}

func TestDocuments_Empty(t *testing.T) {
	cfg := domain.DefaultConfig(t.TempDir())
	require.NoError(t, os.MkdirAll(cfg.DocumentsDir, domain.DirPerm))
	loader, _ := newLoader(t)

	docs, err := loader.Documents(cfg)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocuments_MissingDir(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Documents(domain.DefaultConfig(t.TempDir()))
	require.ErrorIs(t, err, domain.ErrDocumentsDirMissing)
}
