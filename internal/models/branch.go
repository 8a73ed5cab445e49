package models

import "time"

// maxMessageLength caps how much of a commit message is kept for the report.
const maxMessageLength = 90

type (
	// Commit is the last commit recorded on a branch.
	Commit struct {
		Author    string
		Message   string
		URL       string
		Timestamp time.Time
	}

	// Branch pairs a branch name with its last commit.
	Branch struct {
		Name       string
		LastCommit Commit
	}

	// ReportRow is one rendered line of the inactivity report.
	ReportRow struct {
		Branch       string `json:"branch"`
		LastCommit   string `json:"last_commit"`
		DaysInactive int    `json:"days_inactive"`
		Author       string `json:"author"`
		Message      string `json:"message"`
	}
)

// NewCommit builds a Commit, truncating the message to maxMessageLength.
func NewCommit(author, message, url string, timestamp time.Time) Commit {
	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
	}
	return Commit{
		Author:    author,
		Message:   message,
		URL:       url,
		Timestamp: timestamp,
	}
}

// DaysInactive returns the whole days elapsed between the last commit and now.
func (b Branch) DaysInactive(now time.Time) int {
	elapsed := now.UTC().Sub(b.LastCommit.Timestamp.UTC())
	if elapsed < 0 {
		return 0
	}
	return int(elapsed.Hours() / 24)
}

// IsInactive reports whether the branch's last commit is at least days old.
// The boundary is inclusive: a branch exactly days old counts as inactive.
func (b Branch) IsInactive(now time.Time, days int) bool {
	threshold := time.Duration(days) * 24 * time.Hour
	return now.UTC().Sub(b.LastCommit.Timestamp.UTC()) >= threshold
}
