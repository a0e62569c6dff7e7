package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	v1 "github.com/the-turing-way/pull-files/pkg/api/v1"
	"github.com/the-turing-way/pull-files/pkg/config"
	"github.com/the-turing-way/pull-files/pkg/filter"
	"github.com/the-turing-way/pull-files/pkg/github"
)

var opts struct {
	pullRequest    string
	githubToken    string
	configPath     string
	timeout        time.Duration
	allPages       bool
	output         string
	logLevel       string
	startPhrase    string
	ignoreSuffixes []string
}

func NewCommand() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:          "pull-files",
		Short:        "List files changed by a pull request under a path prefix",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logrus.SetOutput(os.Stderr)
			logrus.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags().Changed)
			if err != nil {
				return err
			}

			return filterFiles(context.Background(), cfg, opts.pullRequest, opts.githubToken, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.pullRequest, "pull-request", "", "Pull request number or URL")
	cmd.PersistentFlags().StringVar(&opts.githubToken, "github-token", "", "Personal access token used to authenticate calls to the GitHub API")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaults.Timeout, "Timeout for each GitHub API call (0 disables)")
	cmd.PersistentFlags().BoolVar(&opts.allPages, "all-pages", defaults.AllPages, "Follow pagination instead of reading only the first page of changed files")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", defaults.Output, "Output format: json or lines")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", logrus.InfoLevel.String(), "Log level")

	cmd.Flags().StringVar(&opts.startPhrase, "start-phrase", filter.DefaultStartPhrase, "Only keep files whose path starts with this phrase")
	cmd.Flags().StringSliceVar(&opts.ignoreSuffixes, "ignore-suffix", nil, "Drop files ending with this suffix (repeatable)")

	cmd.AddCommand(NewChangedCommand())
	return cmd
}

func filterFiles(ctx context.Context, cfg config.Config, ref, token string, out io.Writer) error {
	client, pr, err := newClient(ctx, cfg, ref, token)
	if err != nil {
		return err
	}

	criteria := v1.NewFilterCriteria(cfg.StartPhrase, cfg.IgnoreSuffixes...)
	files, err := client.FilterChangedFiles(ctx, pr, criteria)
	if err != nil {
		return err
	}

	return printFiles(out, cfg.Output, files)
}

func newClient(ctx context.Context, cfg config.Config, ref, token string) (*github.Client, *v1.PullRequest, error) {
	client, err := github.New(ctx, github.Options{
		Token:      token,
		BaseURL:    cfg.BaseURL,
		Owner:      cfg.Owner,
		Repository: cfg.Repository,
		Timeout:    cfg.Timeout,
		AllPages:   cfg.AllPages,
	})
	if err != nil {
		return nil, nil, err
	}

	pr, err := client.ExtractPRInfo(ref)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid pull request %q: %w", ref, err)
	}

	return client, pr, nil
}
