// Package commands implements the CLI commands for imagetool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/imagetool/internal/app"
	"go.trai.ch/imagetool/internal/build"
	"go.trai.ch/imagetool/internal/core/domain"
)

// CLI represents the command line interface for imagetool.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	cwd     func() (string, error)
}

// Application represents the application logic interface.
type Application interface {
	CacheDir() string
	ListCache() map[string]string
	GetCacheEntry(key string) (string, bool, error)
	AddCacheEntry(key, value string) error
	DeleteCacheEntry(key string) (string, bool, error)
	SetCacheDir(path string) bool
	LoadPlan(file, cwd string) (*domain.BuildPlan, error)
	LoadOptionsFile(path string) (map[string]string, error)
	Prepare(ctx context.Context, plan domain.BuildPlan) (*app.PrepareResult, error)
	Resolve(files []string, values map[string]string) ([]domain.ResolvedFile, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "imagetool",
		Short:         "Prepare container image build contexts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		cwd:     osGetwd,
	}

	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newPrepareCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetWorkingDir overrides the directory the build file search starts from. Used for testing.
func (c *CLI) SetWorkingDir(dir string) {
	c.cwd = func() (string, error) { return dir, nil }
}
