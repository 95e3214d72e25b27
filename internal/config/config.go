// Package config manages the gw configuration file.
//
// The config lives at ~/.config/gw/config.toml as a flat key mapping.
// Missing keys fall back to defaults, an unreadable or unparseable
// file yields defaults with a warning, and unknown keys survive a
// load/save round trip untouched.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/gw/internal/storage"
)

// Config holds the gw user settings.
type Config struct {
	Name          string `toml:"name"`
	Email         string `toml:"email"`
	DefaultBranch string `toml:"default_branch"`
	AutoPush      bool   `toml:"auto_push"`
	ShowEmoji     bool   `toml:"show_emoji"`
	DefaultRemote string `toml:"default_remote"`
	UseColors     bool   `toml:"use_colors"`
	ParallelPush  bool   `toml:"parallel_push"`
	MaxHistory    int    `toml:"max_history"`

	// extra holds keys this version doesn't recognize; preserved on save
	extra map[string]any
}

// knownKeys are the config keys this version owns.
var knownKeys = []string{
	"name", "email", "default_branch", "auto_push", "show_emoji",
	"default_remote", "use_colors", "parallel_push", "max_history",
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DefaultBranch: "main",
		AutoPush:      true,
		ShowEmoji:     true,
		DefaultRemote: "origin",
		UseColors:     true,
		ParallelPush:  true,
		MaxHistory:    20,
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := storage.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from path.
// A missing file is not an error. A corrupt or unreadable file returns
// Default() alongside the error so the caller can warn and proceed.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode over the defaults so absent keys keep their default value.
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = Default().MaxHistory
	}

	// Keep unrecognized keys so a save doesn't destroy them.
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err == nil {
		for _, key := range knownKeys {
			delete(raw, key)
		}
		if len(raw) > 0 {
			cfg.extra = raw
		}
	}

	return cfg, nil
}

// Save atomically writes the config to path, preserving any unknown
// keys read at load time.
func (c *Config) Save(path string) error {
	doc := make(map[string]any, len(knownKeys)+len(c.extra))
	for key, value := range c.extra {
		doc[key] = value
	}
	doc["name"] = c.Name
	doc["email"] = c.Email
	doc["default_branch"] = c.DefaultBranch
	doc["auto_push"] = c.AutoPush
	doc["show_emoji"] = c.ShowEmoji
	doc["default_remote"] = c.DefaultRemote
	doc["use_colors"] = c.UseColors
	doc["parallel_push"] = c.ParallelPush
	doc["max_history"] = c.MaxHistory

	data, err := toml.Marshal(doc)
	if err != nil {
		return err
	}
	return storage.SaveBytes(path, data)
}
