package domain

// BuildPlan describes everything needed to prepare one build context.
type BuildPlan struct {
	// WorkDir is the build working directory. A temporary one is created when empty.
	WorkDir string
	// Chown is the "user:group" owning copied files.
	Chown string
	// AdditionalBuildCommands is the path of the sectioned commands file.
	AdditionalBuildCommands string
	// AdditionalBuildFiles are the file and directory roots to copy into files/.
	AdditionalBuildFiles []string
	// ResolveFiles are the template files rewritten in place.
	ResolveFiles []string
	// Options holds the values available to template resolution.
	Options BuildOptions
}
