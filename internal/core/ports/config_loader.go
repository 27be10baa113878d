package ports

import "go.trai.ch/texwatch/internal/core/domain"

// ConfigLoader defines the interface for loading and persisting the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the project configuration starting at cwd.
	// A missing configuration file yields defaults rooted at cwd.
	Load(cwd string) (*domain.Config, error)

	// Save writes cfg to the configuration file in cfg.Root.
	Save(cfg *domain.Config) error

	// Documents lists the .tex files in cfg.DocumentsDir as absolute paths, sorted.
	Documents(cfg *domain.Config) ([]string, error)
}
