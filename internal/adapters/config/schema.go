package config

// Buildfile represents the structure of the imagetool.yaml build file.
type Buildfile struct {
	WorkDir                 string            `yaml:"workDir"`
	Tag                     string            `yaml:"tag"`
	DomainHome              string            `yaml:"domainHome"`
	Chown                   string            `yaml:"chown"`
	AdditionalBuildCommands string            `yaml:"additionalBuildCommands"`
	AdditionalBuildFiles    []string          `yaml:"additionalBuildFiles"`
	ResolveFiles            []string          `yaml:"resolveFiles"`
	Options                 map[string]string `yaml:"options"`
	OptionsFile             string            `yaml:"optionsFile"`
}
