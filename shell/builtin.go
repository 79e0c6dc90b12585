package shell

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// builtinCommands declares the built-in subcommands. pwd only exists when
// a backend lookup is configured, so hosts without a backend never see it
// in their grammar.
func builtinCommands(withPwd bool) Augmentor {
	return func(root *cobra.Command) {
		root.AddCommand(
			&cobra.Command{
				Use:   "version",
				Short: "Print version information",
			},
			&cobra.Command{
				Use:   "exit [status]",
				Short: "Exit with the given status (default 0)",
			},
		)
		if withPwd {
			root.AddCommand(&cobra.Command{
				Use:   "pwd",
				Short: "Print the backend's current working location",
			})
		}
	}
}

// builtinHandler answers the built-in commands and passes everything else
// down the chain. It runs ahead of all user handlers.
func builtinHandler(sh *Shell, m *Match) Result {
	switch m.Command() {
	case "version":
		fmt.Fprintf(sh.out, "%s version %s (%s)\n", sh.pkg, sh.version, sh.name)
		return Handled()

	case "exit":
		code := 0
		if args := m.Args(); len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 || n > 255 {
				// Usage error, same class as a flag the grammar rejects.
				return Error(&GrammarError{
					Message: fmt.Sprintf("exit: invalid status %q", args[0]),
				})
			}
			code = n
		}
		return Exit(code)

	case "pwd":
		if sh.lookup == nil {
			// pwd was never declared; a user handler may own the name.
			return Pass()
		}
		backend := sh.Backend()
		if backend == nil {
			return Errorf("pwd: %w", ErrNoBackend)
		}
		fmt.Fprintln(sh.out, backend.Cwd())
		return Handled()

	default:
		return Pass()
	}
}
