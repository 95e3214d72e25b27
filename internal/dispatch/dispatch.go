package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/gw/internal/git"
)

// Mode selects how targets are executed.
type Mode int

const (
	// ModeSequential processes targets strictly in request order,
	// one subprocess at a time.
	ModeSequential Mode = iota
	// ModeConcurrent fans out to all targets, bounded by the
	// engine's in-flight limit.
	ModeConcurrent
)

// DefaultMaxInFlight bounds concurrent subprocess fan-out.
const DefaultMaxInFlight = 5

// Request describes one dispatch: a branch pushed to a set of remotes.
type Request struct {
	Branch  string
	Targets []string
	Mode    Mode
}

// Outcome is the result of pushing to exactly one remote.
type Outcome struct {
	Target string
	OK     bool
	Detail string // diagnostic text on failure, empty on success
}

// PushFunc performs the push against a single remote.
// A non-nil error means the push failed; the error text becomes the
// outcome's diagnostic detail.
type PushFunc func(ctx context.Context, target, branch string) error

// Engine executes dispatch requests.
type Engine struct {
	push        PushFunc
	maxInFlight int
	timeout     time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxInFlight overrides the concurrent in-flight bound.
func WithMaxInFlight(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxInFlight = n
		}
	}
}

// WithTimeout sets a per-target timeout. Zero (the default) means no
// timeout: a hung push (e.g. a credential prompt) occupies its slot
// until the subprocess exits.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// New creates an engine that pushes via the given function.
func New(push PushFunc, opts ...Option) *Engine {
	e := &Engine{push: push, maxInFlight: DefaultMaxInFlight}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dispatch executes the request and returns exactly one outcome per
// requested target, in request order. The request is validated before
// any push is attempted; a validation error means zero pushes ran.
//
// Concurrent mode is only used for requests with more than one target;
// a single-target request always runs sequentially.
func (e *Engine) Dispatch(ctx context.Context, req Request) ([]Outcome, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if req.Mode == ModeConcurrent && len(req.Targets) > 1 {
		return e.concurrent(ctx, req), nil
	}
	return e.sequential(ctx, req), nil
}

// validate rejects malformed requests before any subprocess is spawned.
func validate(req Request) error {
	if len(req.Targets) == 0 {
		return errors.New("dispatch: no targets")
	}
	seen := make(map[string]struct{}, len(req.Targets))
	for _, target := range req.Targets {
		if target == "" {
			return errors.New("dispatch: empty target name")
		}
		if _, dup := seen[target]; dup {
			return fmt.Errorf("dispatch: duplicate target %q", target)
		}
		seen[target] = struct{}{}
	}
	if err := git.ValidateBranchName(req.Branch); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	return nil
}

// sequential pushes to each target in order, one at a time.
func (e *Engine) sequential(ctx context.Context, req Request) []Outcome {
	outcomes := make([]Outcome, len(req.Targets))
	for i, target := range req.Targets {
		outcomes[i] = e.pushOne(ctx, target, req.Branch)
	}
	return outcomes
}

// concurrent fans out to all targets with a bounded number in flight.
// Each goroutine owns one outcome slot, so no further synchronization
// is needed and slot order equals request order.
func (e *Engine) concurrent(ctx context.Context, req Request) []Outcome {
	outcomes := make([]Outcome, len(req.Targets))

	var g errgroup.Group
	g.SetLimit(min(len(req.Targets), e.maxInFlight))

	for i, target := range req.Targets {
		g.Go(func() error {
			outcomes[i] = e.pushOne(ctx, target, req.Branch)
			return nil // failures are outcomes, never group errors
		})
	}
	_ = g.Wait()

	return outcomes
}

// pushOne runs the push for a single target and records its outcome.
func (e *Engine) pushOne(ctx context.Context, target, branch string) Outcome {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	err := e.push(ctx, target, branch)
	if err == nil {
		return Outcome{Target: target, OK: true}
	}

	detail := err.Error()
	if e.timeout > 0 && ctx.Err() == context.DeadlineExceeded {
		detail = fmt.Sprintf("timed out after %s", e.timeout)
	}
	return Outcome{Target: target, OK: false, Detail: detail}
}
