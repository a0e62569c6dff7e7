package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	v1 "github.com/the-turing-way/pull-files/pkg/api/v1"
)

type Options struct {
	// Token is optional. When set it is sent as "Authorization: token <Token>".
	Token string
	// BaseURL overrides https://api.github.com/.
	BaseURL    string
	Owner      string
	Repository string
	// Timeout bounds each API call. Zero disables it.
	Timeout time.Duration
	// AllPages follows pagination links. Without it only the first page of
	// changed files is returned.
	AllPages bool
}

type Client struct {
	client     *github.Client
	owner      string
	repository string
	timeout    time.Duration
	allPages   bool
}

func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Owner == "" || opts.Repository == "" {
		return nil, fmt.Errorf("owner and repository are required")
	}

	var client *github.Client
	if opts.Token != "" {
		// GitHub accepts the "token" scheme for personal access tokens
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: opts.Token, TokenType: "token"},
		)
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		client = github.NewClient(nil)
	}

	if opts.BaseURL != "" {
		u, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		client.BaseURL = u
	}

	return &Client{
		client:     client,
		owner:      opts.Owner,
		repository: opts.Repository,
		timeout:    opts.Timeout,
		allPages:   opts.AllPages,
	}, nil
}

// ExtractPRInfo resolves a pull request reference. A full pull request URL
// supplies its own owner and repository; any other value ("123", "#123", or
// something the API will reject) is used as the identifier for the client's
// configured repository.
func (c *Client) ExtractPRInfo(ref string) (*v1.PullRequest, error) {
	ref = strings.TrimSpace(ref)

	if !strings.HasPrefix(ref, "https://") && !strings.HasPrefix(ref, "http://") {
		return &v1.PullRequest{
			Owner:      c.owner,
			Repository: c.repository,
			ID:         strings.TrimPrefix(ref, "#"),
		}, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 4 || segments[2] != "pull" {
		return nil, fmt.Errorf("invalid GitHub PR URL format")
	}

	if _, err := strconv.Atoi(segments[3]); err != nil {
		return nil, fmt.Errorf("invalid pull request number %q in %s", segments[3], ref)
	}

	logrus.WithFields(map[string]interface{}{
		"owner": segments[0],
		"repo":  segments[1],
		"pr":    segments[3],
	}).Debugf("found info for pr %s", ref)
	return &v1.PullRequest{
		Owner:      segments[0],
		Repository: segments[1],
		ID:         segments[3],
	}, nil
}
