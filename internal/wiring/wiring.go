// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/texwatch/internal/adapters/config"
	_ "go.trai.ch/texwatch/internal/adapters/latex"
	_ "go.trai.ch/texwatch/internal/adapters/logger"
	_ "go.trai.ch/texwatch/internal/adapters/opener"
	_ "go.trai.ch/texwatch/internal/adapters/scaffold"
	_ "go.trai.ch/texwatch/internal/adapters/shell"
	_ "go.trai.ch/texwatch/internal/adapters/telemetry"
	_ "go.trai.ch/texwatch/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/texwatch/internal/app"
	_ "go.trai.ch/texwatch/internal/engine/session"
)
