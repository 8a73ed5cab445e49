package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JureCacilo/gitea-branch-activity/internal/i18n"
	"github.com/fatih/color"
	"github.com/google/go-github/v68/github"
	"golang.org/x/mod/semver"
)

const (
	releaseOwner = "JureCacilo"
	releaseRepo  = "gitea-branch-activity"

	disableUpdateCheckEnv = "GITEA_BRANCH_ACTIVITY_DISABLE_UPDATE_CHECK"
)

// VersionChecker prints a notice on stderr when a newer release exists.
// The check runs at most once a day and never blocks the report.
type VersionChecker struct {
	currentVersion string
	trans          *i18n.Translations
}

type updateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

func NewVersionChecker(version string, trans *i18n.Translations) *VersionChecker {
	return &VersionChecker{
		currentVersion: version,
		trans:          trans,
	}
}

func (v *VersionChecker) CheckForUpdates(ctx context.Context) {
	if os.Getenv(disableUpdateCheckEnv) != "" {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < 24*time.Hour {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printUpdateNotification(cache.LatestKnown)
		}
		return
	}

	client := github.NewClient(nil)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	release, _, err := client.Repositories.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return
	}

	latestVersion := release.GetTagName()

	_ = v.saveCache(updateCache{
		LastCheck:   time.Now(),
		LatestKnown: latestVersion,
	})

	if v.isUpdateAvailable(latestVersion) {
		v.printUpdateNotification(latestVersion)
	}
}

func (v *VersionChecker) isUpdateAvailable(latest string) bool {
	current := v.currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return current != latest
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionChecker) printUpdateNotification(latest string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	msgAvailable := v.trans.GetMessage("update.available", 0, map[string]interface{}{
		"Current": v.currentVersion,
		"Latest":  green(latest),
	})
	msgCommand := v.trans.GetMessage("update.command", 0, map[string]interface{}{
		"Command": green(fmt.Sprintf("go install github.com/%s/%s@latest", releaseOwner, releaseRepo)),
	})

	_, _ = fmt.Fprintf(os.Stderr, "\n%s\n%s\n\n", yellow(msgAvailable), msgCommand)
}

func (v *VersionChecker) getCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	cacheDir := filepath.Join(homeDir, ".config", "gitea-branch-activity")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", err
	}
	return cacheDir, nil
}

func (v *VersionChecker) loadCache() (updateCache, error) {
	cacheDir, err := v.getCacheDir()
	if err != nil {
		return updateCache{}, err
	}

	cachePath := filepath.Join(cacheDir, "last_update_check.json")
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return updateCache{}, err
	}

	var cache updateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return updateCache{}, err
	}

	return cache, nil
}

func (v *VersionChecker) saveCache(cache updateCache) error {
	cacheDir, err := v.getCacheDir()
	if err != nil {
		return err
	}

	cachePath := filepath.Join(cacheDir, "last_update_check.json")
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cachePath, data, 0644)
}
