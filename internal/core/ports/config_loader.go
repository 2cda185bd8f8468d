package ports

import "go.trai.ch/pynix/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader loads the project manifest from the given working directory.
type ConfigLoader interface {
	Load(cwd string) (*domain.Manifest, error)
}
