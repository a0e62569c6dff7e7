package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/github"
	"github.com/sirupsen/logrus"

	v1 "github.com/the-turing-way/pull-files/pkg/api/v1"
	"github.com/the-turing-way/pull-files/pkg/filter"
)

const (
	mediaTypeV3 = "application/vnd.github.v3+json"

	// maxPerPage is the largest page size the files endpoint allows.
	maxPerPage = 100
)

// ListChangedFiles returns the filenames touched by pr in the order the API
// lists them.
func (c *Client) ListChangedFiles(ctx context.Context, pr *v1.PullRequest) ([]string, error) {
	log := logrus.WithFields(map[string]interface{}{
		"owner": pr.Owner,
		"repo":  pr.Repository,
		"pr":    pr.ID,
	})

	path := fmt.Sprintf("repos/%s/%s/pulls/%s/files",
		url.PathEscape(pr.Owner), url.PathEscape(pr.Repository), url.PathEscape(pr.ID))

	files := []string{}
	page := 0
	for {
		u := path
		if c.allPages {
			u = fmt.Sprintf("%s?per_page=%d", path, maxPerPage)
			if page > 0 {
				u = fmt.Sprintf("%s&page=%d", u, page)
			}
		}

		commitFiles, resp, err := c.getFiles(ctx, u)
		if err != nil {
			log.WithError(err).WithField("page", page).Warn("failed to list pull request files")
			return nil, err
		}

		for i, f := range commitFiles {
			if f == nil || f.Filename == nil {
				err := &MalformedResponseError{Index: len(files) + i, Reason: "missing filename"}
				log.WithError(err).Warn("failed to list pull request files")
				return nil, err
			}
		}
		for _, f := range commitFiles {
			files = append(files, f.GetFilename())
		}

		if resp.NextPage == 0 {
			break
		}
		if !c.allPages {
			log.WithField("count", len(files)).Warn("pull request has more changed files than one page holds; result is truncated")
			break
		}
		page = resp.NextPage
	}

	log.WithField("count", len(files)).Info("listed pull request files")
	return files, nil
}

// FilterChangedFiles lists the files changed by pr and keeps the ones that
// match criteria.
func (c *Client) FilterChangedFiles(ctx context.Context, pr *v1.PullRequest, criteria v1.FilterCriteria) ([]string, error) {
	files, err := c.ListChangedFiles(ctx, pr)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(files, criteria)
	logrus.WithFields(map[string]interface{}{
		"pr":           pr.ID,
		"start_phrase": criteria.StartPhrase,
		"count":        len(filtered),
	}).Debug("filtered pull request files")
	return filtered, nil
}

// getFiles issues one GET, bounded by the client timeout.
func (c *Client) getFiles(ctx context.Context, u string) ([]*github.CommitFile, *github.Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", mediaTypeV3)

	var commitFiles []*github.CommitFile
	resp, err := c.client.Do(ctx, req, &commitFiles)
	if err != nil {
		return nil, resp, classifyError(req, err)
	}

	return commitFiles, resp, nil
}
