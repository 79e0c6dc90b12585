package shell

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Augmentor adds flags or subcommands to the grammar definition under
// construction. A fresh command tree is built for every dispatch, so
// augmentors run once per dispatch and must not retain the command they
// are given.
type Augmentor func(root *cobra.Command)

// Match is the structured result of matching a word list against the
// grammar: the resolved subcommand plus its parsed flags and positional
// arguments.
type Match struct {
	cmd  *cobra.Command
	args []string
}

// Command returns the name of the matched subcommand, or "" when the word
// list matched only the root grammar.
func (m *Match) Command() string {
	if m.cmd == nil || !m.cmd.HasParent() {
		return ""
	}
	return m.cmd.Name()
}

// Path returns the full subcommand path below the root, such as
// "remote add". Empty when only the root matched.
func (m *Match) Path() string {
	if m.cmd == nil || !m.cmd.HasParent() {
		return ""
	}
	path := m.cmd.CommandPath()
	if idx := strings.IndexByte(path, ' '); idx >= 0 {
		return path[idx+1:]
	}
	return ""
}

// Flags exposes the matched command's flag set, including persistent flags
// inherited from the root.
func (m *Match) Flags() *pflag.FlagSet {
	return m.cmd.Flags()
}

// Args returns the positional arguments remaining after flag parsing.
func (m *Match) Args() []string {
	return m.args
}

// GetString returns the value of a string flag, or "" if the flag does not
// exist.
func (m *Match) GetString(name string) string {
	v, _ := m.Flags().GetString(name)
	return v
}

// GetBool returns the value of a bool flag, or false if the flag does not
// exist.
func (m *Match) GetBool(name string) bool {
	v, _ := m.Flags().GetBool(name)
	return v
}

// GetInt returns the value of an int flag, or 0 if the flag does not
// exist.
func (m *Match) GetInt(name string) int {
	v, _ := m.Flags().GetInt(name)
	return v
}

// GetCount returns the value of a count flag, or 0 if the flag does not
// exist.
func (m *Match) GetCount(name string) int {
	v, _ := m.Flags().GetCount(name)
	return v
}

// buildGrammar assembles a fresh command tree: built-in flags first, then
// registered argument augmentors, then built-in and registered subcommand
// augmentors.
func (sh *Shell) buildGrammar() *cobra.Command {
	root := &cobra.Command{
		Use:           sh.name,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Unregistered command words stay positional so the handler chain
		// sees them and can report command-not-found itself.
		Args: cobra.ArbitraryArgs,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	root.PersistentFlags().BoolP("quiet", "q", false,
		"Suppress all output except for errors; overrides -v")
	root.PersistentFlags().CountP("verbose", "v",
		"Turn on verbose output; repeat to increase verbosity")

	for _, aug := range sh.argAugs {
		aug(root)
	}
	for _, aug := range sh.cmdAugs {
		aug(root)
	}
	return root
}

// parse matches words against the grammar. It uses Find and ParseFlags
// only; the grammar engine never executes anything and never reaches
// process-exit facilities, so every failure comes back as a value.
func (sh *Shell) parse(words []string) (*Match, *GrammarError) {
	root := sh.buildGrammar()
	root.InitDefaultHelpFlag()

	cmd, rest, err := root.Find(words)
	if err != nil {
		return nil, &GrammarError{Message: err.Error(), Usage: root.UsageString()}
	}
	cmd.InitDefaultHelpFlag()
	if err := cmd.ParseFlags(rest); err != nil {
		return nil, &GrammarError{Message: err.Error(), Usage: cmd.UsageString()}
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return nil, &GrammarError{Message: "help requested", Usage: cmd.UsageString()}
	}

	m := &Match{cmd: cmd, args: cmd.Flags().Args()}
	if m.Command() == "" && len(m.Args()) == 0 {
		// Bare invocation with no command at all.
		return nil, &GrammarError{Message: "missing command", Usage: root.UsageString()}
	}
	return m, nil
}
