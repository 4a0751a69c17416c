// Package config defines the engine's runtime configuration: theme,
// keybindings, and the whitespace-handling settings the diff loader
// consumes. Reading a project's git config is an external collaborator
// (spec §1 Non-goals); this package only loads an optional TOML override
// file and otherwise returns built-in defaults, following the approach
// sacenox-symb/internal/config/config.go takes for its own settings file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the fully-resolved runtime configuration for one session.
type Config struct {
	AutoSelectNext bool `toml:"auto_select_next"`
	UndoLimit      uint32
	CommentPrefix  string
	IgnoreWhitespace DiffIgnoreWhitespaceSetting
	ShowWhitespace   DiffShowWhitespaceSetting
	// RenameLimit bounds the rename-detection search the diff loader runs
	// (internal/vcs.CommitDiffLoaderOptions.RenameLimit); 0 disables it.
	RenameLimit uint16
	// Copies additionally detects copies, not just renames, the same
	// CommitDiffLoaderOptions.Copies controls.
	Copies      bool
	Theme       Theme
	KeyBindings KeyBindings
}

// fileConfig is the subset of Config that may be overridden by a TOML file;
// Theme and KeyBindings are intentionally not file-overridable in this
// minimal loader and keep their built-in defaults.
type fileConfig struct {
	AutoSelectNext *bool   `toml:"auto_select_next"`
	UndoLimit      *uint32 `toml:"undo_limit"`
	CommentPrefix  *string `toml:"comment_prefix"`
	IgnoreWhitespace *string `toml:"diff_ignore_whitespace"`
	ShowWhitespace   *string `toml:"diff_show_whitespace"`
	RenameLimit      *uint16 `toml:"diff_rename_limit"`
	Copies           *bool   `toml:"diff_copies"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AutoSelectNext: false,
		UndoLimit:      5000,
		CommentPrefix:  "#",
		IgnoreWhitespace: IgnoreWhitespaceNone,
		ShowWhitespace:   ShowWhitespaceBoth,
		// 400 matches git's own diff.renameLimit default; Copies off
		// matches git's default of detecting renames but not copies.
		RenameLimit: 400,
		Copies:      false,
		Theme:       DefaultTheme(),
		KeyBindings: DefaultKeyBindings(),
	}
}

// Load returns Default(), overridden by any fields present in the TOML
// file at path. A missing file is not an error; a malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, err
	}

	if fc.AutoSelectNext != nil {
		cfg.AutoSelectNext = *fc.AutoSelectNext
	}
	if fc.UndoLimit != nil {
		cfg.UndoLimit = *fc.UndoLimit
	}
	if fc.CommentPrefix != nil {
		cfg.CommentPrefix = *fc.CommentPrefix
	}
	if fc.IgnoreWhitespace != nil {
		if v, ok := ParseDiffIgnoreWhitespaceSetting(*fc.IgnoreWhitespace); ok {
			cfg.IgnoreWhitespace = v
		}
	}
	if fc.ShowWhitespace != nil {
		if v, ok := ParseDiffShowWhitespaceSetting(*fc.ShowWhitespace); ok {
			cfg.ShowWhitespace = v
		}
	}
	if fc.RenameLimit != nil {
		cfg.RenameLimit = *fc.RenameLimit
	}
	if fc.Copies != nil {
		cfg.Copies = *fc.Copies
	}
	return cfg, nil
}
