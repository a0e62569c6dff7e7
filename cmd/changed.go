package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/the-turing-way/pull-files/pkg/config"
)

func NewChangedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "changed",
		Short: "List every file changed by a pull request, unfiltered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags().Changed)
			if err != nil {
				return err
			}

			return listFiles(context.Background(), cfg, opts.pullRequest, opts.githubToken, cmd.OutOrStdout())
		},
	}
}

func listFiles(ctx context.Context, cfg config.Config, ref, token string, out io.Writer) error {
	client, pr, err := newClient(ctx, cfg, ref, token)
	if err != nil {
		return err
	}

	files, err := client.ListChangedFiles(ctx, pr)
	if err != nil {
		return err
	}

	return printFiles(out, cfg.Output, files)
}
