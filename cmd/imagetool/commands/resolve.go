package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	var opts optionFlags

	cmd := &cobra.Command{
		Use:   "resolve FILE...",
		Short: "Replace ${NAME} placeholders in files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := opts.collect(c.app)
			if err != nil {
				return err
			}

			resolved, err := c.app.Resolve(args, values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range resolved {
				if r.Changed {
					_, _ = fmt.Fprintf(out, "%s: %d replaced\n", r.Path, r.Replacements)
				} else {
					_, _ = fmt.Fprintf(out, "%s: unchanged\n", r.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.values, "opt", nil, "Option value as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&opts.file, "opt-file", "", "File of KEY=VALUE option values")

	return cmd
}
