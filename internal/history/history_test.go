package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestAppend_TrimsToMax(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")

	for i := 0; i < 10; i++ {
		if err := Append(path, fmt.Sprintf("command%d", i), "desc", 5); err != nil {
			t.Fatalf("Append(%d) = %v, want nil", i, err)
		}
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len(entries) = %d, want 5", len(entries))
	}
	for i, e := range entries {
		want := fmt.Sprintf("command%d", i+5)
		if e.Command != want {
			t.Errorf("entries[%d].Command = %q, want %q", i, e.Command, want)
		}
	}
}

func TestAppend_StampsTimestamp(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := Append(path, "push", "Pushed main to origin", 20); err != nil {
		t.Fatalf("Append() = %v, want nil", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Timestamp == 0 {
		t.Error("Timestamp = 0, want current unix time")
	}
	if entries[0].Description != "Pushed main to origin" {
		t.Errorf("Description = %q, want %q", entries[0].Description, "Pushed main to origin")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	entries, err := Load(filepath.Join(t.TempDir(), "history.json"))
	if err != nil {
		t.Fatalf("Load(missing) = %v, want nil", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load(missing) = %v, want empty", entries)
	}
}

func TestLoad_CorruptFileTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load(corrupt) = %v, want nil", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load(corrupt) = %v, want empty", entries)
	}
}

func TestSave_NoTrimUnderCap(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	entries := []Entry{
		{Command: "commit", Description: "a", Timestamp: 1},
		{Command: "push", Description: "b", Timestamp: 2},
	}
	if err := Save(path, entries, 20); err != nil {
		t.Fatalf("Save() = %v, want nil", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if len(loaded) != 2 || loaded[0].Command != "commit" || loaded[1].Command != "push" {
		t.Errorf("loaded = %+v, want original two entries in order", loaded)
	}
}
