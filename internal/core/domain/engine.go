package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Engine names the external LaTeX compiler backend.
type Engine string

const (
	// EnginePDFLaTeX is the classic pdfTeX based engine.
	EnginePDFLaTeX Engine = "pdflatex"
	// EngineLuaLaTeX is the LuaTeX based engine.
	EngineLuaLaTeX Engine = "lualatex"
	// EngineXeLaTeX is the XeTeX based engine.
	EngineXeLaTeX Engine = "xelatex"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = EnginePDFLaTeX

// Engines returns the supported engines in menu order.
func Engines() []Engine {
	return []Engine{EnginePDFLaTeX, EngineLuaLaTeX, EngineXeLaTeX}
}

// ParseEngine validates name against the supported engines.
// An empty name yields DefaultEngine.
func ParseEngine(name string) (Engine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultEngine, nil
	}
	for _, e := range Engines() {
		if string(e) == name {
			return e, nil
		}
	}
	return "", zerr.Wrap(ErrUnknownEngine, fmt.Sprintf("engine %q", name))
}

// String returns the binary name of the engine.
func (e Engine) String() string {
	return string(e)
}
