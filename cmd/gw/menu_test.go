package main

import (
	"testing"

	"github.com/raphi011/gw/internal/git"
)

func TestMenuEntries_EndWithQuit(t *testing.T) {
	t.Parallel()

	for _, entries := range [][]menuEntry{repoMenuEntries(), bareMenuEntries()} {
		last := entries[len(entries)-1]
		if last.op != opQuit {
			t.Errorf("last menu entry = %q, want quit", last.label)
		}
	}
}

func TestBareMenu_OmitsRepoOperations(t *testing.T) {
	t.Parallel()

	for _, e := range bareMenuEntries() {
		switch e.op {
		case opPush, opCommit, opAdd, opSync, opStatus:
			t.Errorf("bare menu offers repo operation %q", e.label)
		}
	}
}

func TestStashRef(t *testing.T) {
	t.Parallel()

	if got, want := stashRef(0), "stash@{0}"; got != want {
		t.Errorf("stashRef(0) = %q, want %q", got, want)
	}
	if got, want := stashRef(3), "stash@{3}"; got != want {
		t.Errorf("stashRef(3) = %q, want %q", got, want)
	}
}

func TestDescribeDelta(t *testing.T) {
	t.Parallel()

	got := describeDelta(git.Delta{Ahead: 2, Behind: 1})
	want := "↑ 2 ahead, ↓ 1 behind"
	if got != want {
		t.Errorf("describeDelta = %q, want %q", got, want)
	}
}

func TestOnOff(t *testing.T) {
	t.Parallel()

	if got := onOff(true); got != "on" {
		t.Errorf("onOff(true) = %q, want on", got)
	}
	if got := onOff(false); got != "off" {
		t.Errorf("onOff(false) = %q, want off", got)
	}
}
