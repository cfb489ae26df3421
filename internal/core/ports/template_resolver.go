package ports

import "go.trai.ch/imagetool/internal/core/domain"

// TemplateResolver rewrites template files in place, substituting ${NAME} placeholders.
//
//go:generate mockgen -source=template_resolver.go -destination=mocks/mock_template_resolver.go -package=mocks
type TemplateResolver interface {
	Resolve(files []string, values map[string]string) ([]domain.ResolvedFile, error)
}
