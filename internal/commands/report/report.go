package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/JureCacilo/gitea-branch-activity/internal/config"
	"github.com/JureCacilo/gitea-branch-activity/internal/i18n"
	"github.com/JureCacilo/gitea-branch-activity/internal/logger"
	"github.com/JureCacilo/gitea-branch-activity/internal/models"
	"github.com/JureCacilo/gitea-branch-activity/internal/ui"
	"github.com/urfave/cli/v3"
)

// ReportGenerator produces the inactivity rows for a threshold in days.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, days int) ([]models.ReportRow, error)
}

// ServiceProvider builds the generator once the configuration is known.
type ServiceProvider func(ctx context.Context, cfg *config.Config) (ReportGenerator, error)

type Command struct {
	provider ServiceProvider
	out      io.Writer
}

func NewReportCommand(provider ServiceProvider) *Command {
	return &Command{
		provider: provider,
		out:      os.Stdout,
	}
}

// Flags returns a fresh flag set for the report. Required inputs are
// validated by config.FromCommand rather than by the flag parser so that
// subcommands like 'version' stay reachable without them.
func Flags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "access_token",
			Usage: t.GetMessage("flag.access_token_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "gitea_url",
			Usage: t.GetMessage("flag.gitea_url_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "repo_owner",
			Usage: t.GetMessage("flag.repo_owner_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "repository",
			Usage: t.GetMessage("flag.repository_usage", 0, nil),
		},
		&cli.IntFlag{
			Name:  "number_of_days",
			Usage: t.GetMessage("flag.number_of_days_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "lang",
			Value: "en",
			Usage: t.GetMessage("flag.lang_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "insecure-skip-verify",
			Usage: t.GetMessage("flag.insecure_usage", 0, nil),
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: 30 * time.Second,
			Usage: t.GetMessage("flag.timeout_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: t.GetMessage("flag.json_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: t.GetMessage("flag.verbose_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("flag.debug_usage", 0, nil),
		},
	}
}

func (c *Command) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   t.GetMessage("report.command_usage", 0, nil),
		Flags:   Flags(t),
		Action:  c.Action(t),
	}
}

// Action is exposed so the root command can run the report directly with
// the flags documented on the CLI surface.
func (c *Command) Action(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return c.run(ctx, cmd, t)
	}
}

func (c *Command) run(ctx context.Context, cmd *cli.Command, t *i18n.Translations) error {
	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}

	logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

	if cfg.Language != "" {
		if err := t.SetLanguage(cfg.Language); err != nil {
			logger.Warn(ctx, "unsupported language, falling back to default", "lang", cfg.Language)
		}
	}

	generator, err := c.provider(ctx, cfg)
	if err != nil {
		return err
	}

	var rows []models.ReportRow
	fetching := t.GetMessage("report.fetching", 0, map[string]interface{}{
		"Owner":      cfg.RepoOwner,
		"Repository": cfg.Repository,
	})
	err = ui.WithSpinner(fetching, func() error {
		var genErr error
		rows, genErr = generator.GenerateReport(ctx, cfg.NumberOfDays)
		return genErr
	})
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		encoder := json.NewEncoder(c.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(c.out, t.GetMessage("report.no_inactive_branches", 0, map[string]interface{}{
			"Days": cfg.NumberOfDays,
		}))
		return nil
	}

	ui.RenderReportTable(c.out, ui.ReportHeaders(t), rows)
	return nil
}
