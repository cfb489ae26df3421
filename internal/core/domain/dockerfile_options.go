package domain

import "strings"

const (
	// DefaultUserID is the image user owning copied files when no chown is given.
	DefaultUserID = "oracle"
	// DefaultGroupID is the image group owning copied files when no chown is given.
	DefaultGroupID = "oracle"
)

// DockerfileOptions collects the values the Dockerfile generator consumes for one build.
type DockerfileOptions struct {
	buildID  string
	userID   string
	groupID  string
	commands BuildCommands
}

// NewDockerfileOptions creates options for the build identified by buildID.
func NewDockerfileOptions(buildID string) *DockerfileOptions {
	return &DockerfileOptions{
		buildID:  buildID,
		userID:   DefaultUserID,
		groupID:  DefaultGroupID,
		commands: make(BuildCommands),
	}
}

// BuildID returns the identifier of the build.
func (o *DockerfileOptions) BuildID() string {
	return o.buildID
}

// UserID returns the owner of files copied into the image.
func (o *DockerfileOptions) UserID() string {
	return o.userID
}

// GroupID returns the group of files copied into the image.
func (o *DockerfileOptions) GroupID() string {
	return o.groupID
}

// SetChown sets the owner from a "user:group" value. An empty part keeps its current value.
func (o *DockerfileOptions) SetChown(value string) error {
	if value == "" {
		return nil
	}
	user, group, ok := strings.Cut(value, ":")
	if !ok || strings.Contains(group, ":") {
		return ErrInvalidChown
	}
	if user != "" {
		o.userID = user
	}
	if group != "" {
		o.groupID = group
	}
	return nil
}

// AddBuildCommands appends each section's commands to the stage of the same tag.
func (o *DockerfileOptions) AddBuildCommands(cmds BuildCommands) {
	for _, tag := range SectionTags() {
		if lines := cmds[tag]; len(lines) > 0 {
			o.commands[tag] = append(o.commands[tag], lines...)
		}
	}
}

// Commands returns the additional commands for the given stage.
func (o *DockerfileOptions) Commands(tag SectionTag) []string {
	return o.commands[tag]
}

// BeforeJDKInstall returns the commands to run before the JDK is installed.
func (o *DockerfileOptions) BeforeJDKInstall() []string { return o.commands[BeforeJDKInstall] }

// AfterJDKInstall returns the commands to run after the JDK is installed.
func (o *DockerfileOptions) AfterJDKInstall() []string { return o.commands[AfterJDKInstall] }

// BeforeFMWInstall returns the commands to run before the middleware is installed.
func (o *DockerfileOptions) BeforeFMWInstall() []string { return o.commands[BeforeFMWInstall] }

// AfterFMWInstall returns the commands to run after the middleware is installed.
func (o *DockerfileOptions) AfterFMWInstall() []string { return o.commands[AfterFMWInstall] }

// BeforeWDTCommand returns the commands to run before the domain creation tool.
func (o *DockerfileOptions) BeforeWDTCommand() []string { return o.commands[BeforeWDTCommand] }

// AfterWDTCommand returns the commands to run after the domain creation tool.
func (o *DockerfileOptions) AfterWDTCommand() []string { return o.commands[AfterWDTCommand] }

// FinalBuildCommands returns the commands to run at the end of the final stage.
func (o *DockerfileOptions) FinalBuildCommands() []string { return o.commands[FinalBuildCommands] }
