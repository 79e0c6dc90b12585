package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keel.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
path = "/srv/volumes/main"
log_level = "debug"
commands = ["a.lua", "b.lua"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "/srv/volumes/main" {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if len(cfg.Commands) != 2 || cfg.Commands[0] != "a.lua" {
		t.Errorf("Commands = %v", cfg.Commands)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg == nil || cfg.Path != "" || cfg.LogLevel != "" || cfg.Commands != nil {
		t.Errorf("missing file config = %+v, want zero value", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `path = [unclosed`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load succeeded on malformed TOML")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "keel", "keel.toml")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
