// Package config holds the process-wide defaults for textdiff.
//
// A *Defaults is loaded once at startup and shared by pointer with the diff
// core, which reads it on every call and may clear Flags when the configured
// value turns out to be rejected by git.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvFlags overrides the flags key of the config file.
const EnvFlags = "TEXTDIFF_FLAGS"

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Defaults struct {
	// Extra git diff options applied when the caller passes none, or passes
	// invalid ones. Empty means unset.
	Flags string `toml:"flags"`

	// One of auto, always or never.
	Color string `toml:"color"`

	WordDiff bool   `toml:"word_diff"`
	LogLevel string `toml:"log_level"`

	// Run git with GIT_CONFIG_NOSYSTEM and an empty global config so diff
	// output does not depend on the user's git settings.
	IsolateGitConfig bool `toml:"isolate_git_config"`
}

func New() *Defaults {
	return &Defaults{
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/textdiff/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is not set.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "textdiff", "config.toml"), nil
}

// Load reads the config file at path. An empty path or a missing file yields
// the built-in defaults. TEXTDIFF_FLAGS, when set, wins over the file.
func Load(path string) (*Defaults, error) {
	d := New()
	if path != "" {
		if err := loadFile(path, d); err != nil {
			return nil, err
		}
	}
	if flags, ok := os.LookupEnv(EnvFlags); ok {
		d.Flags = flags
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return d, nil
}

func loadFile(path string, d *Defaults) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := decode(f, d); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func decode(r io.Reader, d *Defaults) error {
	md, err := toml.NewDecoder(r).Decode(d)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func (d *Defaults) Validate() error {
	switch d.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, d.Color)
	}
}

// ClearFlags resets Flags to the unset value.
func (d *Defaults) ClearFlags() {
	d.Flags = ""
}
