package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JureCacilo/gitea-branch-activity/internal/i18n"
	"github.com/JureCacilo/gitea-branch-activity/internal/models"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []models.ReportRow {
	return []models.ReportRow{
		{
			Branch:       "main",
			LastCommit:   "06-05-2024 10:30",
			DaysInactive: 40,
			Author:       "jure",
			Message:      "initial import",
		},
		{
			Branch:       "old-feature",
			LastCommit:   "17-01-2024 08:15",
			DaysInactive: 150,
			Author:       "ana",
			Message:      "wip",
		},
	}
}

func TestRenderReportTable(t *testing.T) {
	color.NoColor = true

	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	t.Run("should render an aligned table", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer

		// Act
		RenderReportTable(&buf, ReportHeaders(trans), sampleRows())

		// Assert
		expected := strings.Join([]string{
			"BRANCH      │ LAST COMMIT      │ DAYS INACTIVE │ AUTHOR │ MESSAGE",
			"────────────┼──────────────────┼───────────────┼────────┼───────────────",
			"main        │ 06-05-2024 10:30 │            40 │ jure   │ initial import",
			"old-feature │ 17-01-2024 08:15 │           150 │ ana    │ wip",
			"",
		}, "\n")
		assert.Equal(t, expected, buf.String())
	})

	t.Run("should be byte-identical across renders", func(t *testing.T) {
		// Arrange
		var first, second bytes.Buffer

		// Act
		RenderReportTable(&first, ReportHeaders(trans), sampleRows())
		RenderReportTable(&second, ReportHeaders(trans), sampleRows())

		// Assert
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("should render headers only for an empty set", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer

		// Act
		RenderReportTable(&buf, ReportHeaders(trans), nil)

		// Assert
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "BRANCH")
	})
}
