package commands

import (
	"maps"
	"strings"

	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/zerr"
)

// optionFlags are the option value flags shared by prepare and resolve.
type optionFlags struct {
	values []string
	file   string
}

// collect returns the option values from the options file, overridden by the KEY=VALUE flags.
func (f optionFlags) collect(a Application) (map[string]string, error) {
	out := make(map[string]string)
	if f.file != "" {
		fromFile, err := a.LoadOptionsFile(f.file)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, fromFile)
	}

	for _, kv := range f.values {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "option must be KEY=VALUE"), "opt", kv)
		}
		out[key] = value
	}
	return out, nil
}
