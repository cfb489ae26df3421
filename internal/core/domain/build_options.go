package domain

const (
	// DefaultDomainHome is the domain home used when none is configured.
	DefaultDomainHome = "/u01/domains/base_domain"

	// ImageNameToken is the placeholder name resolved to the image tag.
	ImageNameToken = "IMAGE_NAME"
	// DomainHomeToken is the placeholder name resolved to the domain home.
	DomainHomeToken = "DOMAIN_HOME"
)

// PlaceholderToken returns the delimited form of a placeholder name, e.g. ${DOMAIN_HOME}.
func PlaceholderToken(name string) string {
	return "${" + name + "}"
}

// BuildOptions are the option values available to template resolution.
type BuildOptions struct {
	ImageTag   string
	DomainHome string
	Values     map[string]string
}

// Placeholders returns the name to value mapping used by the template resolver.
// User supplied values take precedence over the built-in names.
func (o BuildOptions) Placeholders() map[string]string {
	out := make(map[string]string, len(o.Values)+2)

	out[DomainHomeToken] = DefaultDomainHome
	if o.DomainHome != "" {
		out[DomainHomeToken] = o.DomainHome
	}
	if o.ImageTag != "" {
		out[ImageNameToken] = o.ImageTag
	}

	for k, v := range o.Values {
		out[k] = v
	}
	return out
}

// ResolvedFile reports the outcome of resolving one template file.
type ResolvedFile struct {
	Path         string
	Replacements int
	Changed      bool
}
