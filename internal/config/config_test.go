package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load(missing) = %v, want nil", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(missing) = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_CorruptFileYieldsExactDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "this is {{{ not toml\n===")
	cfg, err := Load(path)
	if err == nil {
		t.Error("Load(corrupt) error = nil, want parse error for warning")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(corrupt) = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "name = \"Ada\"\nparallel_push = false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if cfg.Name != "Ada" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Ada")
	}
	if cfg.ParallelPush {
		t.Error("ParallelPush = true, want false")
	}
	// Untouched keys keep their defaults.
	if cfg.DefaultBranch != "main" || cfg.DefaultRemote != "origin" {
		t.Errorf("defaults not preserved: branch=%q remote=%q", cfg.DefaultBranch, cfg.DefaultRemote)
	}
	if !cfg.AutoPush || cfg.MaxHistory != 20 {
		t.Errorf("defaults not preserved: auto_push=%v max_history=%d", cfg.AutoPush, cfg.MaxHistory)
	}
}

func TestLoad_InvalidMaxHistoryFallsBack(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "max_history = -3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if cfg.MaxHistory != 20 {
		t.Errorf("MaxHistory = %d, want 20", cfg.MaxHistory)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Name = "Ada"
	cfg.Email = "ada@example.com"
	cfg.ParallelPush = false
	cfg.MaxHistory = 5
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() = %v, want nil", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestSave_PreservesUnknownKeys(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "name = \"Ada\"\nfuture_feature = \"on\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	cfg.Email = "ada@example.com"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "future_feature") {
		t.Errorf("saved config lost unknown key:\n%s", data)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload = %v, want nil", err)
	}
	if reloaded.Name != "Ada" || reloaded.Email != "ada@example.com" {
		t.Errorf("reload = %+v, want updated fields kept", reloaded)
	}
}
