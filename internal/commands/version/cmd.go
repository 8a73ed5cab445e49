package version

import (
	"context"
	"fmt"

	"github.com/JureCacilo/gitea-branch-activity/internal/i18n"
	"github.com/JureCacilo/gitea-branch-activity/internal/version"
	"github.com/urfave/cli/v3"
)

type CommandFactory struct{}

func NewCommandFactory() *CommandFactory {
	return &CommandFactory{}
}

func (f *CommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: t.GetMessage("version.usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(t.GetMessage("version.message", 0, map[string]interface{}{
				"Version": version.FullVersion(),
			}))
			return nil
		},
	}
}
