package fs

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Hasher fingerprints the files of an assembled build context.
type Hasher struct {
	limit int
}

// NewHasher creates a Hasher that reads at most GOMAXPROCS files at a time.
func NewHasher() *Hasher {
	return &Hasher{limit: runtime.GOMAXPROCS(0)}
}

// ComputeFileHash computes the XXHash of a file's content and returns it with the byte count.
func (h *Hasher) ComputeFileHash(path string) (uint64, int64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	n, err := io.Copy(hasher, f)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), n, nil
}

// HashFiles hashes root/rel for every rel concurrently and returns the manifest.
// Entries are sorted by path, which keeps the digest independent of scheduling.
func (h *Hasher) HashFiles(ctx context.Context, root string, rels []string) (*domain.ContextManifest, error) {
	entries := make([]domain.ManifestEntry, len(rels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.limit)

	for i, rel := range rels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, size, err := h.ComputeFileHash(filepath.Join(root, rel))
			if err != nil {
				return err
			}
			entries[i] = domain.ManifestEntry{
				Path: filepath.ToSlash(rel),
				Size: size,
				Hash: fmt.Sprintf("%016x", sum),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	return &domain.ContextManifest{
		Entries: entries,
		Digest:  digest(entries),
	}, nil
}

func digest(entries []domain.ManifestEntry) string {
	hasher := xxhash.New()
	for _, e := range entries {
		_, _ = hasher.WriteString(e.Path)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(e.Hash)
		_, _ = hasher.Write([]byte{0})
		_ = binary.Write(hasher, binary.LittleEndian, e.Size)
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
