package shell

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below unwrap to these so callers can match
// with errors.Is.
var (
	// ErrGrammar indicates the word list did not match the declared
	// grammar.
	ErrGrammar = errors.New("shell: grammar error")

	// ErrNotFound indicates no handler claimed the command.
	ErrNotFound = errors.New("shell: command not found")

	// ErrInternal indicates a dispatcher invariant was violated. It should
	// not occur under the single-shell lifetime model, but dispatch
	// degrades to it instead of panicking.
	ErrInternal = errors.New("shell: internal error")

	// ErrNoBackend indicates a backend-dependent command ran with an empty
	// backend slot.
	ErrNoBackend = errors.New("shell: no backend configured")

	// ErrFatal marks a deliberate terminate-now request from user-level
	// logic, distinct from any uncontrolled termination.
	ErrFatal = errors.New("shell: fatal")
)

// GrammarError carries the grammar engine's rendered message for a word
// list that failed to parse. It is an expected, user-facing outcome of bad
// input, returned as a value; it never terminates the process.
type GrammarError struct {
	// Message is the engine's rendered description of the failure.
	Message string

	// Usage is the usage text for the command the input was matched
	// against, suitable for printing after the message.
	Usage string
}

func (e *GrammarError) Error() string { return "shell: " + e.Message }

func (e *GrammarError) Unwrap() error { return ErrGrammar }

// NotFoundError names the command nothing claimed, so a caller can suggest
// alternatives.
type NotFoundError struct {
	Command string
}

func (e *NotFoundError) Error() string {
	if e.Command == "" {
		return "shell: command not found"
	}
	return fmt.Sprintf("shell: command not found: %s", e.Command)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InternalError reports a violated dispatcher invariant.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string { return "shell: internal error: " + e.Reason }

func (e *InternalError) Unwrap() error { return ErrInternal }

// FatalError is an explicit terminate-now request carrying the status the
// process should exit with.
type FatalError struct {
	Message string
	Code    int
}

func (e *FatalError) Error() string { return "shell: fatal: " + e.Message }

func (e *FatalError) Unwrap() error { return ErrFatal }
