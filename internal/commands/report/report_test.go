package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/JureCacilo/gitea-branch-activity/internal/config"
	apperrors "github.com/JureCacilo/gitea-branch-activity/internal/errors"
	"github.com/JureCacilo/gitea-branch-activity/internal/i18n"
	"github.com/JureCacilo/gitea-branch-activity/internal/models"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateReport(ctx context.Context, days int) ([]models.ReportRow, error) {
	args := m.Called(ctx, days)
	if rows, ok := args.Get(0).([]models.ReportRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return translations
}

// newTestApp wires the report command into a root command the way main does,
// capturing its output in a buffer.
func newTestApp(t *testing.T, generator ReportGenerator, providerErr error) (*cli.Command, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	command := &Command{
		provider: func(ctx context.Context, cfg *config.Config) (ReportGenerator, error) {
			if providerErr != nil {
				return nil, providerErr
			}
			return generator, nil
		},
		out: &out,
	}

	translations := newTestTranslations(t)
	app := &cli.Command{
		Name:     "gitea-branch-activity",
		Commands: []*cli.Command{command.CreateCommand(translations)},
	}
	return app, &out
}

func reportArgs(extra ...string) []string {
	args := []string{
		"gitea-branch-activity", "report",
		"--access_token", "tok123",
		"--gitea_url", "https://gitea.example.com",
		"--repo_owner", "jure",
		"--repository", "platform",
		"--number_of_days", "30",
	}
	return append(args, extra...)
}

func TestCommand_Run(t *testing.T) {
	color.NoColor = true

	t.Run("should render a table with the inactive branches", func(t *testing.T) {
		// Arrange
		generator := new(MockReportGenerator)
		generator.On("GenerateReport", mock.Anything, 30).Return([]models.ReportRow{
			{
				Branch:       "main",
				LastCommit:   "06-05-2024 10:30",
				DaysInactive: 40,
				Author:       "jure",
				Message:      "initial import",
			},
		}, nil)

		app, out := newTestApp(t, generator, nil)

		// Act
		err := app.Run(context.Background(), reportArgs())

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out.String(), "BRANCH")
		assert.Contains(t, out.String(), "main")
		assert.Contains(t, out.String(), "06-05-2024 10:30")
		generator.AssertExpectations(t)
	})

	t.Run("should print the report as JSON when requested", func(t *testing.T) {
		// Arrange
		generator := new(MockReportGenerator)
		generator.On("GenerateReport", mock.Anything, 30).Return([]models.ReportRow{
			{
				Branch:       "old-feature",
				LastCommit:   "17-01-2024 08:15",
				DaysInactive: 150,
				Author:       "ana",
				Message:      "wip",
			},
		}, nil)

		app, out := newTestApp(t, generator, nil)

		// Act
		err := app.Run(context.Background(), reportArgs("--json"))

		// Assert
		require.NoError(t, err)

		var rows []models.ReportRow
		require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "old-feature", rows[0].Branch)
		assert.Equal(t, 150, rows[0].DaysInactive)
	})

	t.Run("should encode an empty JSON array when nothing qualifies", func(t *testing.T) {
		// Arrange
		generator := new(MockReportGenerator)
		generator.On("GenerateReport", mock.Anything, 30).Return([]models.ReportRow{}, nil)

		app, out := newTestApp(t, generator, nil)

		// Act
		err := app.Run(context.Background(), reportArgs("--json"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "[]\n", out.String())
	})

	t.Run("should print a message when no branch is inactive", func(t *testing.T) {
		// Arrange
		generator := new(MockReportGenerator)
		generator.On("GenerateReport", mock.Anything, 30).Return([]models.ReportRow{}, nil)

		app, out := newTestApp(t, generator, nil)

		// Act
		err := app.Run(context.Background(), reportArgs())

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out.String(), "No branches inactive for 30 days or more.")
	})

	t.Run("should fail before building the service when a flag is missing", func(t *testing.T) {
		// Arrange
		providerCalled := false
		var out bytes.Buffer
		command := &Command{
			provider: func(ctx context.Context, cfg *config.Config) (ReportGenerator, error) {
				providerCalled = true
				return nil, nil
			},
			out: &out,
		}
		app := &cli.Command{
			Name:     "gitea-branch-activity",
			Commands: []*cli.Command{command.CreateCommand(newTestTranslations(t))},
		}

		// Act
		err := app.Run(context.Background(), []string{
			"gitea-branch-activity", "report",
			"--gitea_url", "https://gitea.example.com",
			"--repo_owner", "jure",
			"--repository", "platform",
			"--number_of_days", "30",
		})

		// Assert
		assert.ErrorIs(t, err, apperrors.ErrMissingAccessToken)
		assert.False(t, providerCalled)
	})

	t.Run("should propagate generator errors", func(t *testing.T) {
		// Arrange
		generator := new(MockReportGenerator)
		generator.On("GenerateReport", mock.Anything, 30).Return(nil, apperrors.ErrRequestFailed)

		app, _ := newTestApp(t, generator, nil)

		// Act
		err := app.Run(context.Background(), reportArgs())

		// Assert
		assert.ErrorIs(t, err, apperrors.ErrRequestFailed)
	})

	t.Run("should propagate provider errors", func(t *testing.T) {
		// Arrange
		app, _ := newTestApp(t, nil, apperrors.ErrInvalidGiteaURL)

		// Act
		err := app.Run(context.Background(), reportArgs())

		// Assert
		assert.ErrorIs(t, err, apperrors.ErrInvalidGiteaURL)
	})
}
