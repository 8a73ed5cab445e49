package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/JureCacilo/gitea-branch-activity/internal/i18n"
	"github.com/JureCacilo/gitea-branch-activity/internal/models"
	"github.com/fatih/color"
)

// ReportHeaders returns the localized column titles, in table order.
func ReportHeaders(t *i18n.Translations) []string {
	return []string{
		t.GetMessage("report.column_branch", 0, nil),
		t.GetMessage("report.column_last_commit", 0, nil),
		t.GetMessage("report.column_days_inactive", 0, nil),
		t.GetMessage("report.column_author", 0, nil),
		t.GetMessage("report.column_message", 0, nil),
	}
}

// RenderReportTable writes the report rows as a fixed-width table. The
// days column is right-aligned, everything else left-aligned. Output is
// deterministic for identical rows.
func RenderReportTable(w io.Writer, headers []string, rows []models.ReportRow) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := []string{
			row.Branch,
			row.LastCommit,
			strconv.Itoa(row.DaysInactive),
			row.Author,
			row.Message,
		}
		for i, cell := range line {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
		cells = append(cells, line)
	}

	// The last column is never padded so lines carry no trailing spaces.
	last := len(headers) - 1

	headerColor := color.New(color.FgCyan, color.Bold)
	padded := make([]string, len(headers))
	for i, header := range headers {
		if i == last {
			padded[i] = headerColor.Sprint(header)
			continue
		}
		padded[i] = headerColor.Sprint(pad(header, widths[i]))
	}
	_, _ = fmt.Fprintln(w, strings.Join(padded, " │ "))

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("─", width)
	}
	_, _ = fmt.Fprintln(w, strings.Join(rule, "─┼─"))

	for _, line := range cells {
		out := make([]string, len(line))
		for i, cell := range line {
			switch {
			case i == 2:
				out[i] = padLeft(cell, widths[i])
			case i == last:
				out[i] = cell
			default:
				out[i] = pad(cell, widths[i])
			}
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(out, " │ "), " "))
	}
}

func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
