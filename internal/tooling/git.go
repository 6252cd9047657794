package tooling

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"
)

// MinNoRepoVersion is the oldest git that runs `diff --no-index` outside of a
// working tree.
const MinNoRepoVersion = "v1.7.0"

func FindGit() (string, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("git not found: %w", err)
	}
	return path, nil
}

// GitVersion runs `git version` and returns the version in semver form
// (e.g. "v2.39.5").
func GitVersion(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "version").Output()
	if err != nil {
		return "", fmt.Errorf("git version: %w", err)
	}
	return parseGitVersion(string(out))
}

// parseGitVersion handles vendor suffixes such as "2.39.5.windows.1" and
// "2.39.3 (Apple Git-146)".
func parseGitVersion(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return "", fmt.Errorf("unexpected git version output: %q", strings.TrimSpace(out))
	}
	parts := strings.Split(fields[2], ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	v := "v" + strings.Join(parts, ".")
	if !semver.IsValid(v) {
		return "", fmt.Errorf("unexpected git version: %q", fields[2])
	}
	return semver.Canonical(v), nil
}

func SupportsNoRepo(version string) bool {
	return semver.IsValid(version) && semver.Compare(version, MinNoRepoVersion) >= 0
}
