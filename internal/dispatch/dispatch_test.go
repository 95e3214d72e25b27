package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// probe is an injected PushFunc that records how it was driven:
// invocation order, call count, and the maximum number of pushes in
// flight at once.
type probe struct {
	mu      sync.Mutex
	order   []string
	calls   atomic.Int32
	inUse   atomic.Int32
	maxSeen atomic.Int32

	delay func(target string) time.Duration
	fail  func(target string) error
}

func (p *probe) push(ctx context.Context, target, branch string) error {
	p.calls.Add(1)
	cur := p.inUse.Add(1)
	defer p.inUse.Add(-1)
	for {
		seen := p.maxSeen.Load()
		if cur <= seen || p.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}

	p.mu.Lock()
	p.order = append(p.order, target)
	p.mu.Unlock()

	if p.delay != nil {
		select {
		case <-time.After(p.delay(target)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if p.fail != nil {
		return p.fail(target)
	}
	return nil
}

func TestDispatch_Sequential_Order(t *testing.T) {
	t.Parallel()

	p := &probe{}
	e := New(p.push)

	targets := []string{"origin", "upstream", "mirror"}
	outcomes, err := e.Dispatch(context.Background(), Request{
		Branch:  "main",
		Targets: targets,
		Mode:    ModeSequential,
	})
	if err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}

	if got := p.maxSeen.Load(); got != 1 {
		t.Errorf("sequential max in-flight = %d, want 1", got)
	}
	for i, target := range targets {
		if p.order[i] != target {
			t.Errorf("invocation order[%d] = %q, want %q", i, p.order[i], target)
		}
		if outcomes[i].Target != target {
			t.Errorf("outcome[%d].Target = %q, want %q", i, outcomes[i].Target, target)
		}
	}
}

func TestDispatch_Concurrent_ReportOrderStable(t *testing.T) {
	t.Parallel()

	targets := []string{"a", "b", "c", "d", "e"}

	// Invert completion order: earlier targets finish last.
	p := &probe{
		delay: func(target string) time.Duration {
			for i, name := range targets {
				if name == target {
					return time.Duration(len(targets)-i) * 20 * time.Millisecond
				}
			}
			return 0
		},
		fail: func(target string) error {
			if target == "b" || target == "d" {
				return errors.New("rejected")
			}
			return nil
		},
	}
	e := New(p.push)

	outcomes, err := e.Dispatch(context.Background(), Request{
		Branch:  "main",
		Targets: targets,
		Mode:    ModeConcurrent,
	})
	if err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}

	for i, target := range targets {
		if outcomes[i].Target != target {
			t.Errorf("outcome[%d].Target = %q, want %q", i, outcomes[i].Target, target)
		}
	}

	summary, err := Summarize(targets, outcomes)
	if err != nil {
		t.Fatalf("Summarize() = %v, want nil", err)
	}
	if got, want := fmt.Sprint(summary.Failed), fmt.Sprint([]string{"b", "d"}); got != want {
		t.Errorf("summary.Failed = %v, want %v", summary.Failed, []string{"b", "d"})
	}
}

func TestDispatch_ModesProduceIdenticalSummaries(t *testing.T) {
	t.Parallel()

	targets := []string{"origin", "upstream", "mirror", "backup"}
	fail := func(target string) error {
		if target == "upstream" || target == "backup" {
			return errors.New("auth error")
		}
		return nil
	}

	run := func(mode Mode) Summary {
		p := &probe{fail: fail}
		e := New(p.push)
		outcomes, err := e.Dispatch(context.Background(), Request{
			Branch:  "main",
			Targets: targets,
			Mode:    mode,
		})
		if err != nil {
			t.Fatalf("Dispatch(mode=%v) = %v, want nil", mode, err)
		}
		s, err := Summarize(targets, outcomes)
		if err != nil {
			t.Fatalf("Summarize(mode=%v) = %v, want nil", mode, err)
		}
		return s
	}

	seq := run(ModeSequential)
	con := run(ModeConcurrent)

	if seq.Total != con.Total || seq.Succeeded != con.Succeeded {
		t.Errorf("summaries differ: sequential %+v, concurrent %+v", seq, con)
	}
	if fmt.Sprint(seq.Failed) != fmt.Sprint(con.Failed) {
		t.Errorf("failed lists differ: sequential %v, concurrent %v", seq.Failed, con.Failed)
	}
}

func TestDispatch_SingleTargetNeverConcurrent(t *testing.T) {
	t.Parallel()

	p := &probe{delay: func(string) time.Duration { return 10 * time.Millisecond }}
	e := New(p.push)

	// Concurrent mode requested, but a single target must still run
	// on the sequential path.
	outcomes, err := e.Dispatch(context.Background(), Request{
		Branch:  "main",
		Targets: []string{"origin"},
		Mode:    ModeConcurrent,
	})
	if err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}
	if len(outcomes) != 1 || !outcomes[0].OK {
		t.Fatalf("outcomes = %+v, want single success", outcomes)
	}
	if got := p.maxSeen.Load(); got != 1 {
		t.Errorf("single-target max in-flight = %d, want 1", got)
	}
}

func TestDispatch_ConcurrentEngagesForMultipleTargets(t *testing.T) {
	t.Parallel()

	p := &probe{delay: func(string) time.Duration { return 50 * time.Millisecond }}
	e := New(p.push)

	_, err := e.Dispatch(context.Background(), Request{
		Branch:  "main",
		Targets: []string{"a", "b", "c"},
		Mode:    ModeConcurrent,
	})
	if err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}
	if got := p.maxSeen.Load(); got < 2 {
		t.Errorf("concurrent max in-flight = %d, want >= 2", got)
	}
}

func TestDispatch_InFlightBound(t *testing.T) {
	t.Parallel()

	var targets []string
	for i := 0; i < 10; i++ {
		targets = append(targets, fmt.Sprintf("remote%d", i))
	}

	p := &probe{delay: func(string) time.Duration { return 20 * time.Millisecond }}
	e := New(p.push, WithMaxInFlight(3))

	_, err := e.Dispatch(context.Background(), Request{
		Branch:  "main",
		Targets: targets,
		Mode:    ModeConcurrent,
	})
	if err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}
	if got := p.maxSeen.Load(); got > 3 {
		t.Errorf("max in-flight = %d, want <= 3", got)
	}
}

func TestDispatch_InvalidBranchRejectedBeforeAnyPush(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"my branch",
		"-leading",
		"trailing.",
		"branch.lock",
		"double..dot",
	}

	for _, branch := range invalid {
		p := &probe{}
		e := New(p.push)
		_, err := e.Dispatch(context.Background(), Request{
			Branch:  branch,
			Targets: []string{"origin", "upstream"},
			Mode:    ModeConcurrent,
		})
		if err == nil {
			t.Errorf("Dispatch(branch=%q) = nil, want error", branch)
		}
		if got := p.calls.Load(); got != 0 {
			t.Errorf("Dispatch(branch=%q) invoked push %d times, want 0", branch, got)
		}
	}
}

func TestDispatch_RejectsEmptyAndDuplicateTargets(t *testing.T) {
	t.Parallel()

	p := &probe{}
	e := New(p.push)

	cases := []Request{
		{Branch: "main", Targets: nil},
		{Branch: "main", Targets: []string{"origin", ""}},
		{Branch: "main", Targets: []string{"origin", "origin"}},
	}
	for _, req := range cases {
		if _, err := e.Dispatch(context.Background(), req); err == nil {
			t.Errorf("Dispatch(targets=%v) = nil, want error", req.Targets)
		}
	}
	if got := p.calls.Load(); got != 0 {
		t.Errorf("push invoked %d times, want 0", got)
	}
}

func TestDispatch_FailureNeverAbortsSiblings(t *testing.T) {
	t.Parallel()

	targets := []string{"origin", "upstream", "mirror"}
	p := &probe{
		fail: func(target string) error {
			if target == "upstream" {
				return errors.New("auth error")
			}
			return nil
		},
	}
	e := New(p.push)

	outcomes, err := e.Dispatch(context.Background(), Request{
		Branch:  "main",
		Targets: targets,
		Mode:    ModeConcurrent,
	})
	if err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}
	if got := p.calls.Load(); got != 3 {
		t.Errorf("push invoked %d times, want 3", got)
	}

	summary, err := Summarize(targets, outcomes)
	if err != nil {
		t.Fatalf("Summarize() = %v, want nil", err)
	}
	if summary.Total != 3 || summary.Succeeded != 2 {
		t.Errorf("summary = %+v, want total 3, succeeded 2", summary)
	}
	if len(summary.Failed) != 1 || summary.Failed[0] != "upstream" {
		t.Errorf("summary.Failed = %v, want [upstream]", summary.Failed)
	}

	for _, o := range outcomes {
		if o.Target == "upstream" && o.Detail != "auth error" {
			t.Errorf("upstream outcome detail = %q, want %q", o.Detail, "auth error")
		}
	}
}

func TestDispatch_PerTargetTimeout(t *testing.T) {
	t.Parallel()

	p := &probe{
		delay: func(target string) time.Duration {
			if target == "slow" {
				return 5 * time.Second
			}
			return 0
		},
	}
	e := New(p.push, WithTimeout(50*time.Millisecond))

	outcomes, err := e.Dispatch(context.Background(), Request{
		Branch:  "main",
		Targets: []string{"fast", "slow"},
		Mode:    ModeConcurrent,
	})
	if err != nil {
		t.Fatalf("Dispatch() = %v, want nil", err)
	}

	if !outcomes[0].OK {
		t.Errorf("fast outcome = %+v, want success", outcomes[0])
	}
	if outcomes[1].OK {
		t.Errorf("slow outcome = %+v, want failure", outcomes[1])
	}
	if !strings.Contains(outcomes[1].Detail, "timed out") {
		t.Errorf("slow outcome detail = %q, want timeout message", outcomes[1].Detail)
	}
}
