package git

import (
	"context"
	"io"
)

// Push pushes branch to the given remote with output captured.
// A non-zero git exit is returned as an error carrying git's stderr;
// callers record it as a per-remote failure, not a fault.
func Push(ctx context.Context, dir, remote, branch string) error {
	return Run(ctx, dir, "push", remote, branch)
}

// PushDryRun previews a push with output streamed live to w.
func PushDryRun(ctx context.Context, dir string, w io.Writer, remote, branch string) error {
	return Stream(ctx, dir, w, "push", "--dry-run", remote, branch)
}
