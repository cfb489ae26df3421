package commands

import (
	"fmt"
	"maps"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/imagetool/internal/core/domain"
)

var osGetwd = os.Getwd

type prepareFlags struct {
	file         string
	workDir      string
	tag          string
	domainHome   string
	chown        string
	commandsFile string
	buildFiles   []string
	resolveFiles []string
	options      optionFlags
}

func (c *CLI) newPrepareCmd() *cobra.Command {
	var f prepareFlags

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Assemble the build context in the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := c.buildPlan(cmd, &f)
			if err != nil {
				return err
			}

			res, err := c.app.Prepare(cmd.Context(), *plan)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "build id: %s\n", res.BuildID)
			_, _ = fmt.Fprintf(out, "work dir: %s\n", res.WorkDir)
			if res.Manifest != nil && len(res.Manifest.Entries) > 0 {
				_, _ = fmt.Fprintf(out, "files:    %d (digest %s)\n", len(res.Manifest.Entries), res.Manifest.Digest)
			}
			for _, tag := range domain.SectionTags() {
				if n := len(res.Options.Commands(tag)); n > 0 {
					_, _ = fmt.Fprintf(out, "section:  %s (%d)\n", tag, n)
				}
			}
			for _, r := range res.Resolved {
				if r.Changed {
					_, _ = fmt.Fprintf(out, "resolved: %s (%d)\n", r.Path, r.Replacements)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Build file to load (default: imagetool.yaml in this directory or a parent)")
	flags.StringVar(&f.workDir, "work-dir", "", "Build working directory (default: a new temporary directory)")
	flags.StringVarP(&f.tag, "tag", "t", "", "Image tag, available as ${IMAGE_NAME}")
	flags.StringVar(&f.domainHome, "domain-home", "", "Domain home, available as ${DOMAIN_HOME}")
	flags.StringVar(&f.chown, "chown", "", "user:group owning the copied files")
	flags.StringVar(&f.commandsFile, "additional-build-commands", "", "Sectioned additional build commands file")
	flags.StringSliceVar(&f.buildFiles, "additional-build-files", nil, "Files or directories to copy into the build context")
	flags.StringSliceVar(&f.resolveFiles, "resolve-files", nil, "Template files to resolve in place")
	flags.StringArrayVar(&f.options.values, "opt", nil, "Option value as KEY=VALUE (repeatable)")
	flags.StringVar(&f.options.file, "opt-file", "", "File of KEY=VALUE option values")

	return cmd
}

// buildPlan loads the build file and applies the flags that were set on top of it.
func (c *CLI) buildPlan(cmd *cobra.Command, f *prepareFlags) (*domain.BuildPlan, error) {
	cwd, err := c.cwd()
	if err != nil {
		return nil, err
	}

	plan, err := c.app.LoadPlan(f.file, cwd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("work-dir") {
		plan.WorkDir = f.workDir
	}
	if flags.Changed("tag") {
		plan.Options.ImageTag = f.tag
	}
	if flags.Changed("domain-home") {
		plan.Options.DomainHome = f.domainHome
	}
	if flags.Changed("chown") {
		plan.Chown = f.chown
	}
	if flags.Changed("additional-build-commands") {
		plan.AdditionalBuildCommands = f.commandsFile
	}
	if flags.Changed("additional-build-files") {
		plan.AdditionalBuildFiles = f.buildFiles
	}
	if flags.Changed("resolve-files") {
		plan.ResolveFiles = f.resolveFiles
	}

	values, err := f.options.collect(c.app)
	if err != nil {
		return nil, err
	}
	if len(values) > 0 {
		if plan.Options.Values == nil {
			plan.Options.Values = make(map[string]string, len(values))
		}
		maps.Copy(plan.Options.Values, values)
	}

	return plan, nil
}
