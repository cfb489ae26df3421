package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContextAssembler = (*Assembler)(nil)

// Assembler implements ports.ContextAssembler.
type Assembler struct {
	walker *Walker
	hasher *Hasher
	logger ports.Logger
}

// NewAssembler creates a new Assembler.
func NewAssembler(walker *Walker, hasher *Hasher, logger ports.Logger) *Assembler {
	return &Assembler{walker: walker, hasher: hasher, logger: logger}
}

// Assemble copies every regular file under sources into workDir/files.
//
// A source that is a file lands at files/<name>; a directory source keeps each file's path
// relative to the directory. Files are first copied into a staging directory inside workDir
// and only moved under files/ once every copy succeeded, so a failed run leaves files/ as it was.
func (a *Assembler) Assemble(ctx context.Context, workDir string, sources []string) (*domain.ContextManifest, error) {
	if workDir == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "work directory must not be empty"), "argument", "workDir")
	}

	if err := os.MkdirAll(workDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkDirCreateFailed.Error()), "path", workDir)
	}

	plan, err := a.plan(workDir, sources)
	if err != nil {
		return nil, err
	}
	if len(plan) == 0 {
		return &domain.ContextManifest{Entries: []domain.ManifestEntry{}, Digest: digest(nil)}, nil
	}

	staging, err := os.MkdirTemp(workDir, ".staging-")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", workDir)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	rels := make([]string, 0, len(plan))
	for _, f := range plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := copyFile(f.Source, filepath.Join(staging, f.Destination)); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", f.Source)
		}
		rels = append(rels, f.Destination)
	}

	manifest, err := a.hasher.HashFiles(ctx, staging, rels)
	if err != nil {
		return nil, err
	}

	filesDir := domain.FilesDir(workDir)
	fresh, err := checkDestinations(filesDir, rels)
	if err != nil {
		return nil, err
	}
	if err := moveIntoPlace(staging, filesDir, rels, fresh); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("copied %d additional build files into %s (digest %s)",
		len(manifest.Entries), filesDir, manifest.Digest))

	return manifest, nil
}

// MergeCommands appends each parsed section to the Dockerfile stage with the same tag.
func (a *Assembler) MergeCommands(opts *domain.DockerfileOptions, cmds domain.BuildCommands) {
	if opts == nil || len(cmds) == 0 {
		return
	}
	opts.AddBuildCommands(cmds)
}

// plan maps every source file to its destination below files/ without touching the disk.
func (a *Assembler) plan(workDir string, sources []string) ([]domain.AdditionalBuildFile, error) {
	filesDir := domain.FilesDir(workDir)
	owners := make(map[string]string)
	var plan []domain.AdditionalBuildFile

	add := func(src, rel string) error {
		ok, err := TargetWithinRoot(filesDir, filepath.Join(filesDir, rel))
		if err != nil || !ok {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrPathEscapesRoot, "invalid destination"), "path", src), "destination", rel)
		}
		if prev, taken := owners[rel]; taken {
			err := zerr.With(zerr.Wrap(domain.ErrFileCollision, "duplicate destination"), "destination", filepath.ToSlash(rel))
			return zerr.With(zerr.With(err, "path", src), "previous", prev)
		}
		owners[rel] = src
		plan = append(plan, domain.AdditionalBuildFile{Source: src, Destination: rel})
		return nil
	}

	for _, root := range sources {
		if root == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "source must not be empty"), "argument", "source")
		}

		info, err := os.Stat(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "path", root)
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", root)
		}

		if !info.IsDir() {
			if err := add(root, filepath.Base(root)); err != nil {
				return nil, err
			}
			continue
		}

		for path, err := range a.walker.WalkFiles(root) {
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", root)
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", path)
			}
			if err := add(path, rel); err != nil {
				return nil, err
			}
		}
	}

	return plan, nil
}

// checkDestinations makes sure every file can be moved under filesDir: each destination must
// be absent or a regular file, and each parent must be absent or a directory. It returns the
// destinations that do not exist yet.
func checkDestinations(filesDir string, rels []string) (map[string]bool, error) {
	fresh := make(map[string]bool, len(rels))
	dirs := make(map[string]bool)

	conflict := func(rel, path, reason string) error {
		err := zerr.With(zerr.Wrap(domain.ErrFileCollision, reason), "destination", filepath.ToSlash(rel))
		return zerr.With(err, "path", path)
	}

	for _, rel := range rels {
		for parent := filepath.Dir(rel); parent != "."; parent = filepath.Dir(parent) {
			if dirs[parent] {
				break
			}
			path := filepath.Join(filesDir, parent)
			info, err := os.Lstat(path)
			switch {
			case errors.Is(err, fs.ErrNotExist):
			case err != nil:
				return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", path)
			case !info.IsDir():
				return nil, conflict(rel, path, "existing entry is not a directory")
			}
			dirs[parent] = true
		}

		dst := filepath.Join(filesDir, rel)
		info, err := os.Lstat(dst)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fresh[rel] = true
		case err != nil:
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", dst)
		case !info.Mode().IsRegular():
			return nil, conflict(rel, dst, "existing entry is not a regular file")
		}
	}
	return fresh, nil
}

// moveIntoPlace renames the staged files under filesDir. If a move fails, the files that
// did not exist before are removed again.
func moveIntoPlace(staging, filesDir string, rels []string, fresh map[string]bool) error {
	var moved []string
	rollback := func() {
		for _, dst := range moved {
			_ = os.Remove(dst)
		}
	}

	for _, rel := range rels {
		dst := filepath.Join(filesDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
			rollback()
			return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", dst)
		}
		if err := os.Rename(filepath.Join(staging, rel), dst); err != nil {
			rollback()
			return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "path", dst)
		}
		if fresh[rel] {
			moved = append(moved, dst)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	//nolint:gosec // Source paths come from the build configuration
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	info, err := in.Stat()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}

	//nolint:gosec // Destination is inside the staging directory
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
