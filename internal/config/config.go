package config

import (
	"net/url"
	"strings"
	"time"

	apperrors "github.com/JureCacilo/gitea-branch-activity/internal/errors"
	"github.com/urfave/cli/v3"
)

const defaultTimeout = 30 * time.Second

// Config holds the per-run inputs. It is built once from the CLI flags and
// never mutated afterwards.
type Config struct {
	AccessToken        string
	GiteaURL           string
	RepoOwner          string
	Repository         string
	NumberOfDays       int
	Language           string
	InsecureSkipVerify bool
	Timeout            time.Duration
	JSONOutput         bool
}

// FromCommand reads the flags off the command chain and validates them.
// Validation happens before any network call is made.
func FromCommand(cmd *cli.Command) (*Config, error) {
	cfg := &Config{
		AccessToken:        strings.TrimSpace(cmd.String("access_token")),
		GiteaURL:           strings.TrimRight(strings.TrimSpace(cmd.String("gitea_url")), "/"),
		RepoOwner:          strings.TrimSpace(cmd.String("repo_owner")),
		Repository:         strings.TrimSpace(cmd.String("repository")),
		NumberOfDays:       int(cmd.Int("number_of_days")),
		Language:           cmd.String("lang"),
		InsecureSkipVerify: cmd.Bool("insecure-skip-verify"),
		Timeout:            cmd.Duration("timeout"),
		JSONOutput:         cmd.Bool("json"),
	}

	if !cmd.IsSet("number_of_days") {
		return nil, apperrors.ErrMissingDays
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the five required inputs are present and well formed.
func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return apperrors.ErrMissingAccessToken
	}
	if c.GiteaURL == "" {
		return apperrors.ErrMissingGiteaURL
	}
	if c.RepoOwner == "" {
		return apperrors.ErrMissingRepoOwner
	}
	if c.Repository == "" {
		return apperrors.ErrMissingRepository
	}
	if c.NumberOfDays < 0 {
		return apperrors.ErrInvalidDays
	}

	parsed, err := url.Parse(c.GiteaURL)
	if err != nil {
		return apperrors.ErrInvalidGiteaURL.WithError(err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return apperrors.ErrInvalidGiteaURL.WithContext("url", c.GiteaURL)
	}

	return nil
}
