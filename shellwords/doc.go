// Package shellwords splits raw command lines into words using POSIX-like
// quoting rules and resolves backslash escape sequences into literal bytes.
//
// SplitLine handles whole lines: whitespace separates words, single quotes
// are fully literal, double quotes and unquoted text support the escape
// table documented on ParseArg, and an unquoted # at a word boundary starts
// a comment. ParseArg applies only the escape table to a single argument,
// which is what an interactive host wants for values typed at a prompt.
//
// Arguments that arrive through os.Args must not be run through this
// package: the invoking shell already resolved their escaping, and a second
// pass corrupts literal backslashes in paths and values.
package shellwords
