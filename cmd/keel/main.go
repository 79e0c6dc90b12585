// Package main is the demonstration host for the keel shell core: a small
// binary that wires a directory-backed shell together with configuration
// and Lua command sets, and dispatches its argument vector once.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keelshell/keel/internal/config"
	"github.com/keelshell/keel/luacmd"
	"github.com/keelshell/keel/shell"
)

const pkgName = "keel"

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The config file's log level acts as a default for the environment
	// override; an explicit KEEL_LOG still wins.
	if cfg.LogLevel != "" && os.Getenv("KEEL_LOG") == "" {
		os.Setenv("KEEL_LOG", cfg.LogLevel)
	}

	scfg := shell.NewFromArgs(pkgName, version).
		Args(func(root *cobra.Command) {
			root.PersistentFlags().StringP("path", "p", cfg.Path,
				"Directory backing the shell")
		}).
		BackendLookup(openBackend)

	var sets []*luacmd.CommandSet
	defer func() {
		for _, cs := range sets {
			cs.Close()
		}
	}()
	for _, script := range cfg.Commands {
		cs, err := luacmd.Load(script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		sets = append(sets, cs)
		scfg.Commands(cs.Commands()).Handle(cs.Handler())
	}

	res := scfg.Build().Run(args)
	if res.IsError() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
		var gerr *shell.GrammarError
		if errors.As(res.Err, &gerr) && gerr.Usage != "" {
			fmt.Fprint(os.Stderr, gerr.Usage)
		}
	}
	return shell.ExitCode(res)
}

// dirBackend anchors the shell at a directory on the local filesystem.
type dirBackend struct {
	root string
}

func (b *dirBackend) Cwd() string { return b.root }

// openBackend resolves the -p flag (or its config default) into a
// directory backend. An empty path means no backend; backend-dependent
// commands then report the absence instead of guessing a location.
func openBackend(m *shell.Match) (shell.Backend, error) {
	path := m.GetString("path")
	if path == "" {
		return nil, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", abs)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	return &dirBackend{root: resolved}, nil
}
