package shell

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/keelshell/keel/logging"
	"github.com/keelshell/keel/shellwords"
)

// Handler examines one dispatched command and either claims it or passes.
// Handlers receive the shared Shell handle so they can reach the backend
// slot or re-enter dispatch; they run strictly in registration order, and
// the first non-Pass result wins.
type Handler func(sh *Shell, m *Match) Result

// Shell is the frozen, shareable dispatcher produced by Config.Build. Its
// augmentor and handler lists are fixed at build time and never mutated
// again, so a Shell may be used from multiple goroutines; the backend slot
// carries its own lock.
type Shell struct {
	name    string
	pkg     string
	version string

	argAugs  []Augmentor
	cmdAugs  []Augmentor
	handlers []Handler

	lookup BackendLookup

	out io.Writer
	log *logrus.Logger

	slot backendSlot
}

// Name returns the command name used in usage text.
func (sh *Shell) Name() string { return sh.name }

// Version returns the embedding application's version.
func (sh *Shell) Version() string { return sh.version }

// Output returns the writer command output goes to.
func (sh *Shell) Output() io.Writer { return sh.out }

// Backend returns the backend held in the resource slot, or nil when no
// backend has been configured or the lookup has not run yet.
func (sh *Shell) Backend() Backend { return sh.slot.get() }

// Run dispatches a process-style argument vector and returns the outcome
// as a value; it never terminates the process.
//
// The words are matched against the grammar verbatim. Arguments that came
// from the operating system already had their shell escaping resolved by
// the invoking shell, so they must not be passed through the escape
// processor first: a second pass would corrupt literal backslashes in
// paths and values. Use RunLine for raw text that still needs tokenizing.
func (sh *Shell) Run(words []string) Result {
	if sh == nil {
		// Degrade safely instead of panicking if a handler outlives its
		// shell.
		return Error(&InternalError{Reason: "dispatch on released shell"})
	}

	m, gerr := sh.parse(words)
	if gerr != nil {
		return Error(gerr)
	}

	sh.initLogging(m)

	if err := sh.slot.resolve(sh.lookup, m); err != nil {
		return Errorf("backend lookup: %w", err)
	}

	for _, h := range sh.handlers {
		res := h(sh, m)
		if res.Status != StatusPass {
			return res
		}
	}

	name := m.Command()
	if name == "" && len(m.Args()) > 0 {
		name = m.Args()[0]
	}
	sh.logger().WithField("command", name).Debug("no handler claimed command")
	return Error(&NotFoundError{Command: name})
}

// RunLine tokenizes one logical line and dispatches it. Parse failures are
// returned per line, never fatal to the process. Blank lines and comment
// lines dispatch nothing and count as handled.
func (sh *Shell) RunLine(line string) Result {
	words, err := shellwords.SplitLine(line)
	if err != nil {
		return Error(err)
	}
	if len(words) == 0 {
		return Handled()
	}
	return sh.Run(words)
}

// logger returns the host-supplied logger, or the process-global one.
func (sh *Shell) logger() *logrus.Logger {
	if sh.log != nil {
		return sh.log
	}
	return logrus.StandardLogger()
}

// initLogging applies the built-in quiet/verbose flags to the
// process-global logger, once per process. A host that supplied its own
// logger has opted out of the global configuration entirely.
func (sh *Shell) initLogging(m *Match) {
	if sh.log != nil {
		return
	}
	level, first := logging.Init(sh.pkg, m.GetBool("quiet"), m.GetCount("verbose"))
	if first {
		logrus.WithFields(logrus.Fields{
			"name":    sh.name,
			"pkg":     sh.pkg,
			"version": sh.version,
			"level":   level,
		}).Info("starting shell")
	}
}
