// Package template resolves ${NAME} placeholders in text files in place.
package template

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TemplateResolver = (*Resolver)(nil)

// rename moves a resolved temp file over its target.
var rename = os.Rename

// Resolver implements ports.TemplateResolver.
type Resolver struct {
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

type pending struct {
	path     string
	mode     os.FileMode
	original []byte
	content  []byte
	result   domain.ResolvedFile
}

// Resolve replaces every ${NAME} in files whose NAME is a key of values.
//
// Every file is read and resolved in memory before anything is written. Changed files are
// written to temporary siblings first and renamed over their targets only when all writes
// succeeded; if a rename fails, the targets already replaced get their original content back.
// Files without a replacement are left untouched.
func (r *Resolver) Resolve(files []string, values map[string]string) ([]domain.ResolvedFile, error) {
	replacer := newReplacer(values)

	work := make([]*pending, 0, len(files))
	for _, path := range files {
		p, err := resolveFile(path, replacer)
		if err != nil {
			return nil, err
		}
		work = append(work, p)
	}

	if err := commit(work); err != nil {
		return nil, err
	}

	results := make([]domain.ResolvedFile, 0, len(work))
	for _, p := range work {
		results = append(results, p.result)
		if p.result.Changed {
			r.logger.Info("resolved " + p.path)
		}
	}
	return results, nil
}

// replacer substitutes placeholders and counts how many it replaced.
type replacer struct {
	repl   *strings.Replacer
	tokens []string
}

func newReplacer(values map[string]string) *replacer {
	names := make([]string, 0, len(values))
	for name := range values {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	tokens := make([]string, 0, len(names))
	for _, name := range names {
		token := domain.PlaceholderToken(name)
		pairs = append(pairs, token, values[name])
		tokens = append(tokens, token)
	}

	return &replacer{repl: strings.NewReplacer(pairs...), tokens: tokens}
}

// line resolves a single line and reports the number of replacements made.
func (rp *replacer) line(s string) (string, int) {
	if len(rp.tokens) == 0 || !strings.Contains(s, "${") {
		return s, 0
	}

	count := 0
	for _, token := range rp.tokens {
		count += strings.Count(s, token)
	}
	if count == 0 {
		return s, 0
	}
	return rp.repl.Replace(s), count
}

func resolveFile(path string, rp *replacer) (*pending, error) {
	if path == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "template path must not be empty"), "argument", "file")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateRead.Error()), "path", path)
	}

	//nolint:gosec // Path is provided by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateRead.Error()), "path", path)
	}

	var out bytes.Buffer
	out.Grow(len(data))
	total := 0

	// SplitAfter keeps each line ending, so CRLF files stay CRLF.
	for _, ln := range strings.SplitAfter(string(data), "\n") {
		resolved, n := rp.line(ln)
		total += n
		out.WriteString(resolved)
	}

	return &pending{
		path:     path,
		mode:     info.Mode().Perm(),
		original: data,
		content:  out.Bytes(),
		result: domain.ResolvedFile{
			Path:         path,
			Replacements: total,
			Changed:      !bytes.Equal(data, out.Bytes()),
		},
	}, nil
}

// commit writes every changed file. Targets are only replaced once all temp files exist, and
// are restored if a later replacement fails.
func commit(work []*pending) error {
	temps := make(map[*pending]string)
	cleanup := func() {
		for _, name := range temps {
			_ = os.Remove(name)
		}
	}

	for _, p := range work {
		if !p.result.Changed {
			continue
		}
		name, err := writeTemp(p.path, p.mode, p.content)
		if err != nil {
			cleanup()
			return zerr.With(zerr.Wrap(err, domain.ErrTemplateWrite.Error()), "path", p.path)
		}
		temps[p] = name
	}

	var replaced []*pending
	for _, p := range work {
		name, ok := temps[p]
		if !ok {
			continue
		}
		if err := rename(name, p.path); err != nil {
			cleanup()
			restore(replaced)
			return zerr.With(zerr.Wrap(err, domain.ErrTemplateWrite.Error()), "path", p.path)
		}
		delete(temps, p)
		replaced = append(replaced, p)
	}
	return nil
}

// restore puts the original content back into targets that were already replaced.
func restore(replaced []*pending) {
	for _, p := range replaced {
		name, err := writeTemp(p.path, p.mode, p.original)
		if err != nil {
			continue
		}
		if err := os.Rename(name, p.path); err != nil {
			_ = os.Remove(name)
		}
	}
}

func writeTemp(path string, mode os.FileMode, content []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}
	name := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
