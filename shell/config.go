package shell

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config accumulates the CLI surface for a shell. Configuration is a
// distinct, single-goroutine phase: none of the methods are safe for
// concurrent use. Build freezes the accumulated state into a Shell, which
// is then freely shareable.
type Config struct {
	name    string
	pkg     string
	version string

	argAugs  []Augmentor
	cmdAugs  []Augmentor
	handlers []Handler

	lookup BackendLookup

	out io.Writer
	log *logrus.Logger
}

// New starts a shell configuration. name is the command name shown in
// usage text; pkg and version identify the embedding application.
func New(name, pkg, version string) *Config {
	return &Config{
		name:    name,
		pkg:     pkg,
		version: version,
	}
}

// NewFromArgs starts a configuration named after the running executable.
func NewFromArgs(pkg, version string) *Config {
	return New(CommandName(pkg), pkg, version)
}

// Args registers an argument-grammar augmentor: a function that adds flags
// to the grammar built for each dispatch.
func (c *Config) Args(aug Augmentor) *Config {
	c.argAugs = append(c.argAugs, aug)
	return c
}

// Commands registers a subcommand augmentor: a function that adds named
// subcommands to the grammar built for each dispatch.
func (c *Config) Commands(aug Augmentor) *Config {
	c.cmdAugs = append(c.cmdAugs, aug)
	return c
}

// Handle appends a handler. Handlers run in registration order, after the
// built-in handlers.
func (c *Config) Handle(h Handler) *Config {
	c.handlers = append(c.handlers, h)
	return c
}

// BackendLookup registers the function that produces the optional backend.
// See the BackendLookup type for when it runs.
func (c *Config) BackendLookup(fn BackendLookup) *Config {
	c.lookup = fn
	return c
}

// Output sets the writer command output goes to. Defaults to os.Stdout.
func (c *Config) Output(w io.Writer) *Config {
	c.out = w
	return c
}

// Logger supplies a host-owned logger. When set, the shell logs through it
// and never touches the process-global logging configuration.
func (c *Config) Logger(log *logrus.Logger) *Config {
	c.log = log
	return c
}

// Build freezes the configuration and returns the shared dispatcher.
// Built-in commands are registered ahead of user handlers, so user
// handlers cannot shadow them but can extend behavior for anything the
// built-ins pass on: version and exit always, pwd only when a backend
// lookup is configured. The augmentor and handler lists are copied; the
// Config may be discarded or reused afterwards without affecting the built
// Shell.
func (c *Config) Build() *Shell {
	sh := &Shell{
		name:    c.name,
		pkg:     c.pkg,
		version: c.version,
		lookup:  c.lookup,
		out:     c.out,
		log:     c.log,
	}
	if sh.out == nil {
		sh.out = os.Stdout
	}

	sh.argAugs = append([]Augmentor(nil), c.argAugs...)

	withPwd := c.lookup != nil
	sh.cmdAugs = make([]Augmentor, 0, len(c.cmdAugs)+1)
	sh.cmdAugs = append(sh.cmdAugs, builtinCommands(withPwd))
	sh.cmdAugs = append(sh.cmdAugs, c.cmdAugs...)

	sh.handlers = make([]Handler, 0, len(c.handlers)+1)
	sh.handlers = append(sh.handlers, builtinHandler)
	sh.handlers = append(sh.handlers, c.handlers...)

	return sh
}
