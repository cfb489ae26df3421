package ports

import (
	"context"

	"go.trai.ch/imagetool/internal/core/domain"
)

// ContextAssembler populates a build working directory.
//
//go:generate mockgen -source=context_assembler.go -destination=mocks/mock_context_assembler.go -package=mocks
type ContextAssembler interface {
	// Assemble copies every regular file under sources into workDir/files,
	// preserving paths relative to each source root.
	Assemble(ctx context.Context, workDir string, sources []string) (*domain.ContextManifest, error)

	// MergeCommands injects parsed sections into the Dockerfile options at their stage.
	MergeCommands(opts *domain.DockerfileOptions, cmds domain.BuildCommands)
}
