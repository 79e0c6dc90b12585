// Package shell provides an embeddable command dispatcher. A host composes
// its CLI surface through Config: argument augmentors add flags to the
// grammar, subcommand augmentors add named commands, and handlers answer
// dispatched invocations in registration order. Build freezes the
// configuration into a Shell that can be shared across goroutines and run
// once per process invocation or once per line of a future interactive
// mode.
//
// Grammar matching is delegated to spf13/cobra; the dispatcher only ever
// parses, it never lets the grammar engine execute anything or touch
// process exit. All failures (malformed grammar input, unknown commands,
// handler errors) come back as Result values; only an outermost entry
// point should translate them into an exit status via ExitCode.
package shell
