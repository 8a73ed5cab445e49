package version

// Version is the current version of gitea-branch-activity.
// It must be bumped on every release.
const Version = "1.0.2"

// FullVersion returns the version with the v prefix.
func FullVersion() string {
	return "v" + Version
}
