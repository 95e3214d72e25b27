package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Delta holds the commit counts between the current branch and its upstream.
type Delta struct {
	Ahead  int
	Behind int
}

// splitLines splits command output into trimmed, non-empty lines.
func splitLines(output []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// Remotes returns the configured remote names in git's listing order.
// The list is queried fresh on every call so that remote additions and
// removals are always reflected.
func Remotes(ctx context.Context, dir string) ([]string, error) {
	output, err := Output(ctx, dir, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return splitLines(output), nil
}

// RemoteURL returns the fetch URL of the given remote.
func RemoteURL(ctx context.Context, dir, remote string) (string, error) {
	output, err := Output(ctx, dir, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("failed to get URL for remote %q: %w", remote, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the current branch name.
// Returns an empty string for detached HEAD state.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	output, err := Output(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// UpstreamStatus returns how far the current branch is ahead of and
// behind its upstream. Best-effort presentation telemetry: any failure
// (no upstream, detached HEAD, unparseable output) yields a zero Delta.
func UpstreamStatus(ctx context.Context, dir string) Delta {
	output, err := Output(ctx, dir, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return Delta{}
	}
	fields := strings.Fields(string(output))
	if len(fields) != 2 {
		return Delta{}
	}
	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return Delta{}
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return Delta{}
	}
	return Delta{Ahead: ahead, Behind: behind}
}

// ChangedFiles returns the paths with uncommitted changes, parsed from
// porcelain status output.
func ChangedFiles(ctx context.Context, dir string) ([]string, error) {
	output, err := Output(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	var files []string
	for _, line := range strings.Split(string(output), "\n") {
		// Porcelain format: two status columns, a space, then the path.
		if len(line) > 3 && strings.TrimSpace(line) != "" {
			files = append(files, strings.TrimSpace(line[3:]))
		}
	}
	return files, nil
}

// StashEntries returns the stash list, one entry per line.
func StashEntries(ctx context.Context, dir string) ([]string, error) {
	output, err := Output(ctx, dir, "stash", "list")
	if err != nil {
		return nil, fmt.Errorf("failed to list stashes: %w", err)
	}
	return splitLines(output), nil
}

// Tags returns all tag names.
func Tags(ctx context.Context, dir string) ([]string, error) {
	output, err := Output(ctx, dir, "tag")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return splitLines(output), nil
}

// LocalBranches returns all local branch names with the current-branch
// and worktree markers stripped.
func LocalBranches(ctx context.Context, dir string) ([]string, error) {
	output, err := Output(ctx, dir, "branch")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	var branches []string
	for _, line := range splitLines(output) {
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimPrefix(line, "+ ")
		branches = append(branches, line)
	}
	return branches, nil
}

// RecentCommits returns the last n commits in oneline format.
func RecentCommits(ctx context.Context, dir string, n int) ([]string, error) {
	output, err := Output(ctx, dir, "log", "--oneline", fmt.Sprintf("-%d", n))
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	return splitLines(output), nil
}
