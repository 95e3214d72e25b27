package git

import (
	"context"
	"io"

	"github.com/raphi011/gw/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// Run executes a git command, discarding stdout.
func Run(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// Output executes a git command and returns stdout.
func Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// Stream executes a git command with output streamed live to w.
func Stream(ctx context.Context, dir string, w io.Writer, args ...string) error {
	return cmd.StreamContext(ctx, "", w, "git", gitArgs(dir, args)...)
}
