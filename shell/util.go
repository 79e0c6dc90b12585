package shell

import (
	"os"
	"path/filepath"
)

// CommandName returns the basename of the running executable, for use as
// the shell's display name. It falls back to the supplied name when argv
// is unavailable.
func CommandName(fallback string) string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		if base := filepath.Base(os.Args[0]); base != "." && base != string(filepath.Separator) {
			return base
		}
	}
	if exe, err := os.Executable(); err == nil {
		if base := filepath.Base(exe); base != "." {
			return base
		}
	}
	return fallback
}
