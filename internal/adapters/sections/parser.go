// Package sections parses additional build command files.
//
// A file is a sequence of section markers such as [before-jdk-install], each followed by the
// commands that belong to that stage:
//
//	# comment
//	[after-fmw-install]
//	RUN rm -rf /u01/oracle/inventory
//	[final-build-commands]
//	LABEL owner=platform
package sections

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandParser = (*Parser)(nil)

// maxLineLength bounds a single command line.
const maxLineLength = 1 << 20

// Parser implements ports.CommandParser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses the commands file at path.
func (p *Parser) ParseFile(path string) (domain.BuildCommands, error) {
	if path == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "commands file path must not be empty"), "argument", "path")
	}

	//nolint:gosec // Path is provided by the user on purpose
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCommandsFileRead.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	cmds, err := p.Parse(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cmds, nil
}

// Parse parses commands from r. Lines are numbered from 1 in errors.
func (p *Parser) Parse(r io.Reader) (domain.BuildCommands, error) {
	cmds := make(domain.BuildCommands)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		current domain.SectionTag
		active  bool
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			name := line[1 : len(line)-1]
			tag, ok := domain.ParseSectionTag(name)
			if !ok {
				err := zerr.With(zerr.Wrap(domain.ErrUnknownSectionTag, "invalid section marker"), "line", lineNo)
				return nil, zerr.With(err, "tag", strings.TrimSpace(name))
			}
			current, active = tag, true
		case !active:
			return nil, zerr.With(zerr.Wrap(domain.ErrCommandOutsideSection, "command needs a section marker"), "line", lineNo)
		default:
			cmds[current] = append(cmds[current], line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCommandsFileRead.Error()), "line", lineNo+1)
	}

	return cmds, nil
}
