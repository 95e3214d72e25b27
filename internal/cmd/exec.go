package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/raphi011/gw/internal/log"
)

// newCommand builds an exec.Cmd with context support and verbose logging.
// dir is the working directory; empty means the current directory.
func newCommand(ctx context.Context, dir, name string, args ...string) *exec.Cmd {
	log.FromContext(ctx).Command(name, args...)
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	return c
}

// RunContext executes a command, discarding stdout.
// On failure the trimmed stderr text becomes the error message.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	c := newCommand(ctx, dir, name, args...)
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return wrapErr(ctx, err, &stderr)
	}
	return nil
}

// OutputContext executes a command and returns its stdout.
// On failure the trimmed stderr text becomes the error message.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	c := newCommand(ctx, dir, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return nil, wrapErr(ctx, err, &stderr)
	}
	return stdout.Bytes(), nil
}

// StreamContext executes a command with stdout and stderr streamed live
// to the given writer. Used for commands whose output the user should
// see as it happens (status, diff, dry runs).
func StreamContext(ctx context.Context, dir string, w io.Writer, name string, args ...string) error {
	c := newCommand(ctx, dir, name, args...)
	c.Stdout = w
	c.Stderr = w
	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

// wrapErr prefers context errors, then stderr text, then the raw error.
func wrapErr(ctx context.Context, err error, stderr *bytes.Buffer) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
