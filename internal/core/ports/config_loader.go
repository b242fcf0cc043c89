package ports

import "go.trai.ch/purge/internal/core/domain"

// ConfigLoader defines the interface for loading the site configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads, defaults and validates the configuration file at path.
	Load(path string) (*domain.SiteConfig, error)
}
