// Package luacmd loads command sets written in Lua and plugs them into a
// shell as a subcommand augmentor plus a handler.
//
// Scripts run in a sandboxed interpreter: only the base, table, string,
// and math libraries are open, and the load/dofile family is removed, so
// a script can compute and format but cannot touch the filesystem,
// network, or process environment. A script declares its commands with
// the injected global
//
//	command("stat", "Print volume statistics", function(args)
//	    return "files: " .. #args
//	end)
//
// where args is the list of positional arguments and a returned string,
// if any, is printed to the shell's output.
package luacmd
