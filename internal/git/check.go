package git

import (
	"context"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH.
// Called once at startup; nothing else can function without it.
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if dir (or the current working directory
// when dir is empty) is inside a git repository.
func IsInsideRepo(ctx context.Context, dir string) bool {
	err := Run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil
}
