package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the imagetool cache",
	}

	cmd.AddCommand(c.newCacheListCmd())
	cmd.AddCommand(c.newCacheGetCmd())
	cmd.AddCommand(c.newCacheAddCmd())
	cmd.AddCommand(c.newCacheDeleteCmd())
	cmd.AddCommand(c.newCacheDirCmd())

	return cmd
}

func (c *CLI) newCacheListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every cache entry",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			items := c.app.ListCache()
			keys := make([]string, 0, len(items))
			for k := range items {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			out := cmd.OutOrStdout()
			for _, k := range keys {
				_, _ = fmt.Fprintf(out, "%s=%s\n", k, items[k])
			}
		},
	}
}

func (c *CLI) newCacheGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value cached under KEY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok, err := c.app.GetCacheEntry(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return zerr.With(zerr.New("cache entry not found"), "key", args[0])
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func (c *CLI) newCacheAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add KEY VALUE",
		Short: "Cache VALUE under KEY",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.AddCacheEntry(args[0], args[1])
		},
	}
}

func (c *CLI) newCacheDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Remove KEY from the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok, err := c.app.DeleteCacheEntry(args[0])
			if err != nil {
				return err
			}
			if ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}
}

func (c *CLI) newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir [PATH]",
		Short: "Print or change the cache directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if args[0] == "" {
					return zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "cache directory must not be empty"), "argument", "path")
				}
				c.app.SetCacheDir(args[0])
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.CacheDir())
			return nil
		},
	}
}
