package gitea

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JureCacilo/gitea-branch-activity/internal/config"
	apperrors "github.com/JureCacilo/gitea-branch-activity/internal/errors"
	"github.com/JureCacilo/gitea-branch-activity/internal/logger"
	"github.com/JureCacilo/gitea-branch-activity/internal/models"
	"golang.org/x/oauth2"
)

// pageSize is the number of branches requested per page. Gitea caps the
// limit server-side, so a short page also means the listing is exhausted.
const pageSize = 50

const maxErrorBodyLength = 512

// BranchLister lists the branches of one repository.
type BranchLister interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)
}

// Client talks to the Gitea REST API for a single owner/repository pair.
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
}

var _ BranchLister = (*Client)(nil)

// NewClient builds a Client authenticated with the configured access token.
func NewClient(cfg *config.Config) *Client {
	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: transport})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.GiteaURL,
		owner:      cfg.RepoOwner,
		repo:       cfg.Repository,
	}
}

type (
	branchResponse struct {
		Name   string          `json:"name"`
		Commit *commitResponse `json:"commit"`
	}

	commitResponse struct {
		URL       string        `json:"url"`
		Message   string        `json:"message"`
		Author    *commitAuthor `json:"author"`
		Timestamp string        `json:"timestamp"`
	}

	commitAuthor struct {
		Name string `json:"name"`
	}
)

// ListBranches fetches every page of the branch listing. Branches whose
// last-commit timestamp cannot be parsed are skipped with a warning; if a
// non-empty listing yields no usable branch at all, that is a parse error.
func (c *Client) ListBranches(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	total := 0

	for page := 1; ; page++ {
		pageBranches, err := c.listPage(ctx, page)
		if err != nil {
			return nil, err
		}
		total += len(pageBranches)

		for _, raw := range pageBranches {
			branch, err := parseBranch(raw)
			if err != nil {
				logger.Warn(ctx, "skipping branch with unusable metadata",
					"branch", raw.Name, "error", err)
				continue
			}
			branches = append(branches, branch)
		}

		if len(pageBranches) < pageSize {
			break
		}
	}

	if total > 0 && len(branches) == 0 {
		return nil, apperrors.ErrNoUsableBranches
	}

	return branches, nil
}

func (c *Client) listPage(ctx context.Context, page int) ([]branchResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/repos/%s/%s/branches?page=%d&limit=%d",
		c.baseURL, c.owner, c.repo, page, pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.ErrRequestFailed.WithError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug(ctx, "requesting branch page", "url", endpoint, "page", page)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ErrRequestFailed.WithError(err).WithContext("url", endpoint)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			return
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ErrRequestFailed.WithError(err).WithContext("url", endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.ErrUnexpectedStatus.
			WithContext("status", resp.StatusCode).
			WithContext("body", truncate(string(body), maxErrorBodyLength)).
			WithContext("url", endpoint)
	}

	var pageBranches []branchResponse
	if err := json.Unmarshal(body, &pageBranches); err != nil {
		return nil, apperrors.ErrMalformedResponse.WithError(err).WithContext("url", endpoint)
	}

	return pageBranches, nil
}

func parseBranch(raw branchResponse) (models.Branch, error) {
	if raw.Name == "" {
		return models.Branch{}, fmt.Errorf("branch has no name")
	}
	if raw.Commit == nil || raw.Commit.Timestamp == "" {
		return models.Branch{}, fmt.Errorf("branch %q has no commit timestamp", raw.Name)
	}

	timestamp, err := time.Parse(time.RFC3339, raw.Commit.Timestamp)
	if err != nil {
		return models.Branch{}, fmt.Errorf("branch %q has an invalid commit timestamp: %w", raw.Name, err)
	}

	author := ""
	if raw.Commit.Author != nil {
		author = raw.Commit.Author.Name
	}

	return models.Branch{
		Name:       raw.Name,
		LastCommit: models.NewCommit(author, raw.Commit.Message, raw.Commit.URL, timestamp),
	}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
