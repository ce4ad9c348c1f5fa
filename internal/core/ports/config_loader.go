package ports

import "go.trai.ch/forge/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads, defaults and validates the configuration file at path.
	// Relative paths inside the file are resolved against its directory.
	Load(path string) (*domain.Config, error)
}
