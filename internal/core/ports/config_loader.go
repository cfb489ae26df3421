package ports

import "go.trai.ch/imagetool/internal/core/domain"

// ConfigLoader defines the interface for loading the build file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Find returns the nearest build file in cwd or one of its parents.
	Find(cwd string) (string, error)

	// Load reads the build file at path and returns the plan it describes.
	Load(path string) (*domain.BuildPlan, error)

	// LoadOptionsFile reads KEY=VALUE option values from path.
	LoadOptionsFile(path string) (map[string]string, error)
}
