package services

import (
	"context"
	"sort"
	"time"

	"github.com/JureCacilo/gitea-branch-activity/internal/gitea"
	"github.com/JureCacilo/gitea-branch-activity/internal/logger"
	"github.com/JureCacilo/gitea-branch-activity/internal/models"
)

// lastCommitDateFormat is the date layout used in the report table.
const lastCommitDateFormat = "02-01-2006 15:04"

// ReportService turns a branch listing into the inactivity report.
type ReportService struct {
	lister gitea.BranchLister
	clock  func() time.Time
}

type ReportServiceOption func(*ReportService)

// WithClock overrides the wall clock, used by tests to pin "now".
func WithClock(clock func() time.Time) ReportServiceOption {
	return func(s *ReportService) {
		s.clock = clock
	}
}

func NewReportService(lister gitea.BranchLister, opts ...ReportServiceOption) *ReportService {
	s := &ReportService{
		lister: lister,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateReport fetches the branches and returns one row per branch whose
// last commit is at least days old. Rows are ordered by last-commit
// timestamp ascending, branch name as tie-break.
func (s *ReportService) GenerateReport(ctx context.Context, days int) ([]models.ReportRow, error) {
	branches, err := s.lister.ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	inactive := s.inactiveBranches(branches, days, now)

	logger.Info(ctx, "branch listing filtered",
		"total", len(branches), "inactive", len(inactive), "threshold_days", days)

	return buildRows(inactive, now), nil
}

// inactiveBranches keeps the branches at least days old. The boundary is
// inclusive: a branch whose last commit is exactly days old is reported.
func (s *ReportService) inactiveBranches(branches []models.Branch, days int, now time.Time) []models.Branch {
	inactive := make([]models.Branch, 0, len(branches))
	for _, branch := range branches {
		if branch.IsInactive(now, days) {
			inactive = append(inactive, branch)
		}
	}

	sort.SliceStable(inactive, func(i, j int) bool {
		ti, tj := inactive[i].LastCommit.Timestamp, inactive[j].LastCommit.Timestamp
		if ti.Equal(tj) {
			return inactive[i].Name < inactive[j].Name
		}
		return ti.Before(tj)
	})

	return inactive
}

func buildRows(branches []models.Branch, now time.Time) []models.ReportRow {
	rows := make([]models.ReportRow, 0, len(branches))
	for _, branch := range branches {
		rows = append(rows, models.ReportRow{
			Branch:       branch.Name,
			LastCommit:   branch.LastCommit.Timestamp.UTC().Format(lastCommitDateFormat),
			DaysInactive: branch.DaysInactive(now),
			Author:       branch.LastCommit.Author,
			Message:      branch.LastCommit.Message,
		})
	}
	return rows
}
