package domain

import "strings"

// SectionTag identifies the build stage a group of additional commands runs in.
type SectionTag uint8

const (
	// BeforeJDKInstall runs before the JDK is installed.
	BeforeJDKInstall SectionTag = iota + 1
	// AfterJDKInstall runs after the JDK is installed.
	AfterJDKInstall
	// BeforeFMWInstall runs before the middleware is installed.
	BeforeFMWInstall
	// AfterFMWInstall runs after the middleware is installed.
	AfterFMWInstall
	// BeforeWDTCommand runs before the domain creation tool is invoked.
	BeforeWDTCommand
	// AfterWDTCommand runs after the domain creation tool is invoked.
	AfterWDTCommand
	// FinalBuildCommands runs at the end of the final image stage.
	FinalBuildCommands
)

var sectionNames = map[SectionTag]string{
	BeforeJDKInstall:   "before-jdk-install",
	AfterJDKInstall:    "after-jdk-install",
	BeforeFMWInstall:   "before-fmw-install",
	AfterFMWInstall:    "after-fmw-install",
	BeforeWDTCommand:   "before-wdt-command",
	AfterWDTCommand:    "after-wdt-command",
	FinalBuildCommands: "final-build-commands",
}

// SectionTags returns every known tag in build stage order.
func SectionTags() []SectionTag {
	return []SectionTag{
		BeforeJDKInstall,
		AfterJDKInstall,
		BeforeFMWInstall,
		AfterFMWInstall,
		BeforeWDTCommand,
		AfterWDTCommand,
		FinalBuildCommands,
	}
}

// String returns the marker name of the tag, as written between brackets.
func (t SectionTag) String() string {
	if name, ok := sectionNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseSectionTag maps a marker name to its tag. Matching ignores case and surrounding space.
func ParseSectionTag(name string) (SectionTag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for tag, n := range sectionNames {
		if n == name {
			return tag, true
		}
	}
	return 0, false
}

// BuildCommands holds the ordered command lines of each parsed section.
type BuildCommands map[SectionTag][]string

// Len returns the total number of commands across all sections.
func (b BuildCommands) Len() int {
	n := 0
	for _, cmds := range b {
		n += len(cmds)
	}
	return n
}
