package shell

import (
	"errors"
	"fmt"
)

// Status indicates the outcome of dispatching one command.
type Status uint8

const (
	// StatusHandled indicates a handler claimed and completed the command.
	StatusHandled Status = iota
	// StatusPass indicates the handler did not claim the command; dispatch
	// continues with the next handler.
	StatusPass
	// StatusError indicates the handler, or dispatch itself, failed.
	StatusError
	// StatusExit indicates user-level logic requested termination of the
	// current run with a specific status.
	StatusExit
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusHandled:
		return "handled"
	case StatusPass:
		return "pass"
	case StatusError:
		return "error"
	case StatusExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Result represents the outcome of dispatching one command.
type Result struct {
	// Status indicates the result status.
	Status Status

	// Err contains any error that occurred.
	Err error

	// Message is an optional message for display.
	Message string

	// Code is the requested exit status for StatusExit.
	Code int
}

// IsHandled returns true if a handler claimed the command.
func (r Result) IsHandled() bool {
	return r.Status == StatusHandled
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Handled creates a successful result.
func Handled() Result {
	return Result{Status: StatusHandled}
}

// HandledWithMessage creates a successful result with a message.
func HandledWithMessage(msg string) Result {
	return Result{Status: StatusHandled, Message: msg}
}

// Pass creates a not-applicable result; dispatch moves on.
func Pass() Result {
	return Result{Status: StatusPass}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Err: fmt.Errorf(format, args...)}
}

// Exit creates a result requesting termination with the given status.
func Exit(code int) Result {
	return Result{Status: StatusExit, Code: code}
}

// ExitCode translates a dispatch result into a process exit status. Only
// the outermost entry point should call it; everything below returns
// results as values.
func ExitCode(r Result) int {
	switch r.Status {
	case StatusHandled:
		return 0
	case StatusExit:
		return r.Code
	case StatusError:
		var gerr *GrammarError
		if errors.As(r.Err, &gerr) {
			return 2
		}
		return 1
	default:
		return 1
	}
}
