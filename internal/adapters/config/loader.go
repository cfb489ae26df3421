// Package config loads imagetool build files and option files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Find walks from cwd towards the file system root and returns the first build file found.
func (l *Loader) Find(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.BuildFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	err := zerr.Wrap(domain.ErrConfigNotFound, "no "+domain.BuildFileName+" in this directory or its parents")
	return "", zerr.With(err, "cwd", cwd)
}

// Load reads the build file at path. Relative paths inside it resolve against its directory.
func (l *Loader) Load(path string) (*domain.BuildPlan, error) {
	if path == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "build file path must not be empty"), "argument", "path")
	}

	var bf Buildfile
	if err := readAndUnmarshalYAML(path, &bf); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	baseDir := filepath.Dir(path)

	values := make(map[string]string)
	if bf.OptionsFile != "" {
		fileValues, err := l.LoadOptionsFile(resolvePath(baseDir, bf.OptionsFile))
		if err != nil {
			return nil, err
		}
		values = fileValues
	}
	for _, k := range sortedKeys(bf.Options) {
		if _, ok := values[k]; ok {
			l.Logger.Warn(fmt.Sprintf("option %q from %s overrides the value in %s", k, path, bf.OptionsFile))
		}
		values[k] = bf.Options[k]
	}

	plan := &domain.BuildPlan{
		Chown:                bf.Chown,
		AdditionalBuildFiles: resolvePaths(baseDir, bf.AdditionalBuildFiles),
		ResolveFiles:         resolvePaths(baseDir, bf.ResolveFiles),
		Options: domain.BuildOptions{
			ImageTag:   bf.Tag,
			DomainHome: bf.DomainHome,
			Values:     values,
		},
	}
	if bf.WorkDir != "" {
		plan.WorkDir = resolvePath(baseDir, bf.WorkDir)
	}
	if bf.AdditionalBuildCommands != "" {
		plan.AdditionalBuildCommands = resolvePath(baseDir, bf.AdditionalBuildCommands)
	}

	return plan, nil
}

// LoadOptionsFile reads KEY=VALUE lines in dotenv syntax from path.
func (l *Loader) LoadOptionsFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsFileFailed.Error()), "path", path)
	}
	return values, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user on purpose
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return zerr.Wrap(err, domain.ErrConfigNotFound.Error())
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}

func resolvePaths(baseDir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, resolvePath(baseDir, p))
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
