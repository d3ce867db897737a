package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/gomap"
)

// Settings are the defaults read from the configuration file. Command line
// options take precedence.
type Settings struct {
	Format   string `toml:"format"`
	Indent   *int   `toml:"indent"`
	MaxDepth int    `toml:"max_depth"`
	Root     string `toml:"root"`
	Color    *bool  `toml:"color"`
}

func (s *Settings) validate() error {
	if s.Format != "" {
		if _, err := format.ParseFormat(s.Format); err != nil {
			return err
		}
	}
	if s.Indent != nil && *s.Indent < 0 {
		return fmt.Errorf("negative indent %d", *s.Indent)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("negative max_depth %d", s.MaxDepth)
	}
	return nil
}

func (s *Settings) format() *format.Format {
	if s.Format == "" {
		return nil
	}
	f, _ := format.ParseFormat(s.Format)
	return &f
}

func (s *Settings) maxDepth() int {
	if s.MaxDepth == 0 {
		return gomap.DefaultMaxDepth
	}
	return s.MaxDepth
}

func (s *Settings) root() string {
	if s.Root == "" {
		return "actors"
	}
	return s.Root
}

// defaultSettingsPath is $TROUPE_CONFIG, or troupe/config.toml in the user
// configuration directory.
func defaultSettingsPath() string {
	if p := os.Getenv("TROUPE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "troupe", "config.toml")
}

// loadSettings reads path. A missing file is not an error unless required.
func loadSettings(path string, required bool) (*Settings, error) {
	s := &Settings{}
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v", path, undec)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}
