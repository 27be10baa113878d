package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal project directory.
	StateDirName = ".texwatch"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "texwatch.yaml"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DefaultDocumentsDir is the directory holding .tex sources when unconfigured.
	DefaultDocumentsDir = "document"

	// DefaultOutputDir is the artifact directory when unconfigured.
	DefaultOutputDir = "output"

	// DefaultMainDocument is the file name of the document created for new projects.
	DefaultMainDocument = "main.tex"

	// SourceExt is the extension of LaTeX sources.
	SourceExt = ".tex"

	// LogExt is the extension of the engine's sidecar log.
	LogExt = ".log"

	// ArtifactExt is the extension of the produced document.
	ArtifactExt = ".pdf"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DebugLogPath returns the path of the debug log below the project root.
// It joins root, .texwatch and debug.log.
func DebugLogPath(root string) string {
	return filepath.Join(root, StateDirName, DebugLogFile)
}
