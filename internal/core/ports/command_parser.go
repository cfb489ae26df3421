package ports

import (
	"io"

	"go.trai.ch/imagetool/internal/core/domain"
)

// CommandParser parses sectioned additional build command files.
//
//go:generate mockgen -source=command_parser.go -destination=mocks/mock_command_parser.go -package=mocks
type CommandParser interface {
	// ParseFile parses the file at path.
	ParseFile(path string) (domain.BuildCommands, error)

	// Parse parses commands from r.
	Parse(r io.Reader) (domain.BuildCommands, error)
}
