package domain

import "go.trai.ch/zerr"

var (
	// ErrEngineNotFound is returned when the compiler engine binary cannot be resolved on PATH.
	ErrEngineNotFound = zerr.New("engine not found")

	// ErrCompilationFailed is returned when the engine ran but did not produce a clean result.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrLogParseFailed is returned when no error excerpt could be extracted from the engine log.
	ErrLogParseFailed = zerr.New("could not parse log file for a specific error")

	// ErrWatchSubscriptionFailed is returned when the file system watch cannot be established or breaks.
	ErrWatchSubscriptionFailed = zerr.New("failed to watch source file")

	// ErrSourceNotFound is returned when the source file to compile does not exist.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrSourceIsDirectory is returned when the source path names a directory.
	ErrSourceIsDirectory = zerr.New("source path is a directory")

	// ErrOutputDirCreateFailed is returned when the artifact directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrFailedToResolvePath is returned when a path cannot be made absolute.
	ErrFailedToResolvePath = zerr.New("failed to resolve absolute path")

	// ErrUnknownEngine is returned when an engine name is not one of the supported engines.
	ErrUnknownEngine = zerr.New("unknown engine, expected one of: pdflatex, lualatex, xelatex")

	// ErrUnknownOpenPolicy is returned when the open policy is not 'always' or 'never'.
	ErrUnknownOpenPolicy = zerr.New("invalid open policy, expected 'always' or 'never'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrNoDocuments is returned when the documents directory holds no .tex file.
	ErrNoDocuments = zerr.New("no .tex files found")

	// ErrDocumentAmbiguous is returned when no file was named and several .tex files exist.
	ErrDocumentAmbiguous = zerr.New("several .tex files found, name the one to use")

	// ErrDocumentsDirMissing is returned when the documents directory does not exist.
	ErrDocumentsDirMissing = zerr.New("documents directory not found")

	// ErrProjectExists is returned when a new project would overwrite an existing directory.
	ErrProjectExists = zerr.New("project directory already exists")

	// ErrProjectCreateFailed is returned when the project tree cannot be written.
	ErrProjectCreateFailed = zerr.New("failed to create project")

	// ErrUnknownTemplate is returned when a project template name is not known.
	ErrUnknownTemplate = zerr.New("unknown template")

	// ErrBuildFailed is returned by the one-shot build when the compilation did not succeed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrUnknownOutputMode is returned when the --output flag names no known display.
	ErrUnknownOutputMode = zerr.New("unknown output mode, expected one of: auto, tui, linear")

	// ErrOpenFailed is returned when the artifact cannot be handed to the system viewer.
	ErrOpenFailed = zerr.New("failed to open artifact")

	// ErrDebugLogFailed is returned when the debug log cannot be opened while the TUI runs.
	ErrDebugLogFailed = zerr.New("failed to open debug log")

	// ErrArtifactNotFound is returned when the artifact to open does not exist.
	ErrArtifactNotFound = zerr.New("artifact not found")
)
