package main

import (
	"context"
	"log"
	"os"

	"github.com/JureCacilo/gitea-branch-activity/internal/cli/registry"
	reportcmd "github.com/JureCacilo/gitea-branch-activity/internal/commands/report"
	versioncmd "github.com/JureCacilo/gitea-branch-activity/internal/commands/version"
	"github.com/JureCacilo/gitea-branch-activity/internal/config"
	"github.com/JureCacilo/gitea-branch-activity/internal/gitea"
	"github.com/JureCacilo/gitea-branch-activity/internal/i18n"
	"github.com/JureCacilo/gitea-branch-activity/internal/services"
	"github.com/JureCacilo/gitea-branch-activity/internal/ui"
	"github.com/JureCacilo/gitea-branch-activity/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the CLI: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	translations, err := i18n.NewTranslations("en", "")
	if err != nil {
		return nil, nil, err
	}

	reportCommand := reportcmd.NewReportCommand(newReportService)

	registerCommand := registry.NewRegistry(translations)
	if err := registerCommand.Register("report", reportCommand); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("version", versioncmd.NewCommandFactory()); err != nil {
		return nil, nil, err
	}

	go func() {
		checker := services.NewVersionChecker(version.FullVersion(), translations)
		checker.CheckForUpdates(context.Background())
	}()

	app := &cli.Command{
		Name:                  "gitea-branch-activity",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Description:           translations.GetMessage("app_description", 0, nil),
		Version:               version.Version,
		Flags:                 reportcmd.Flags(translations),
		Action:                reportCommand.Action(translations),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}

	return app, translations, nil
}

func newReportService(ctx context.Context, cfg *config.Config) (reportcmd.ReportGenerator, error) {
	client := gitea.NewClient(cfg)
	return services.NewReportService(client), nil
}
