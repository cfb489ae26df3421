// Package app implements the application layer for imagetool.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cache        ports.CacheStore
	parser       ports.CommandParser
	assembler    ports.ContextAssembler
	resolver     ports.TemplateResolver
	configLoader ports.ConfigLoader
	logger       ports.Logger
	newBuildID   func() string
}

// New creates a new App instance.
func New(
	cache ports.CacheStore,
	parser ports.CommandParser,
	assembler ports.ContextAssembler,
	resolver ports.TemplateResolver,
	loader ports.ConfigLoader,
	log ports.Logger,
) *App {
	return &App{
		cache:        cache,
		parser:       parser,
		assembler:    assembler,
		resolver:     resolver,
		configLoader: loader,
		logger:       log,
		newBuildID:   uuid.NewString,
	}
}

// WithBuildIDFunc replaces the build id generator.
// This is primarily used for testing to get predictable working directories.
func (a *App) WithBuildIDFunc(fn func() string) *App {
	a.newBuildID = fn
	return a
}

// PrepareResult describes a prepared build context.
type PrepareResult struct {
	BuildID  string
	WorkDir  string
	Options  *domain.DockerfileOptions
	Manifest *domain.ContextManifest
	Resolved []domain.ResolvedFile
}

// CacheDir returns the cache root directory.
func (a *App) CacheDir() string {
	return a.cache.CacheDir()
}

// ListCache returns every cache entry.
func (a *App) ListCache() map[string]string {
	return a.cache.Items()
}

// GetCacheEntry returns the value cached under key.
func (a *App) GetCacheEntry(key string) (string, bool, error) {
	return a.cache.Get(key)
}

// AddCacheEntry caches value under key. A value that could not be persisted stays
// available to this process and is reported with a warning.
func (a *App) AddCacheEntry(key, value string) error {
	persisted, err := a.cache.Put(key, value)
	if err != nil {
		return err
	}
	if !persisted {
		a.logger.Warn(fmt.Sprintf("cache entry %q is only kept for this run", key))
	}
	return nil
}

// DeleteCacheEntry removes key and returns the value it held.
func (a *App) DeleteCacheEntry(key string) (string, bool, error) {
	return a.cache.Delete(key)
}

// SetCacheDir changes the cache root directory and reports whether it changed.
func (a *App) SetCacheDir(path string) bool {
	return a.cache.SetCacheDir(path)
}

// LoadPlan returns the build plan from file, or from the build file found from cwd upwards
// when file is empty. Without any build file the plan is empty.
func (a *App) LoadPlan(file, cwd string) (*domain.BuildPlan, error) {
	if file == "" {
		found, err := a.configLoader.Find(cwd)
		if err != nil {
			if errors.Is(err, domain.ErrConfigNotFound) {
				return &domain.BuildPlan{}, nil
			}
			return nil, err
		}
		file = found
	}

	plan, err := a.configLoader.Load(file)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return plan, nil
}

// LoadOptionsFile reads KEY=VALUE option values from path.
func (a *App) LoadOptionsFile(path string) (map[string]string, error) {
	return a.configLoader.LoadOptionsFile(path)
}

// Prepare builds the context described by plan: it parses the additional build commands,
// copies the additional build files into the working directory, merges the commands into the
// Dockerfile options and resolves the template files.
func (a *App) Prepare(ctx context.Context, plan domain.BuildPlan) (*PrepareResult, error) {
	buildID := a.newBuildID()

	opts := domain.NewDockerfileOptions(buildID)
	if err := opts.SetChown(plan.Chown); err != nil {
		return nil, zerr.With(err, "chown", plan.Chown)
	}

	workDir := plan.WorkDir
	if workDir == "" {
		workDir = filepath.Join(os.TempDir(), domain.WorkDirPrefix+buildID)
	}

	// Commands are parsed before anything touches the working directory.
	var cmds domain.BuildCommands
	if plan.AdditionalBuildCommands != "" {
		parsed, err := a.parser.ParseFile(plan.AdditionalBuildCommands)
		if err != nil {
			return nil, a.prepareError(err, buildID)
		}
		cmds = parsed
	}

	manifest, err := a.assembler.Assemble(ctx, workDir, plan.AdditionalBuildFiles)
	if err != nil {
		return nil, a.prepareError(err, buildID)
	}

	a.assembler.MergeCommands(opts, cmds)

	var resolved []domain.ResolvedFile
	if len(plan.ResolveFiles) > 0 {
		resolved, err = a.resolver.Resolve(plan.ResolveFiles, plan.Options.Placeholders())
		if err != nil {
			return nil, a.prepareError(err, buildID)
		}
	}

	a.logger.Info(fmt.Sprintf("prepared build %s in %s", buildID, workDir))

	return &PrepareResult{
		BuildID:  buildID,
		WorkDir:  workDir,
		Options:  opts,
		Manifest: manifest,
		Resolved: resolved,
	}, nil
}

// Resolve rewrites files in place using values.
func (a *App) Resolve(files []string, values map[string]string) ([]domain.ResolvedFile, error) {
	if len(files) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "no files to resolve"), "argument", "files")
	}
	return a.resolver.Resolve(files, values)
}

func (a *App) prepareError(err error, buildID string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrPrepareFailed.Error()), "build_id", buildID)
}
