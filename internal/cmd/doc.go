// Package cmd provides helpers for executing external commands.
//
// All helpers take a context for cancellation and an optional working
// directory. A command that exits non-zero is reported as a regular
// error value carrying the trimmed stderr text; it is never treated as
// a programming error.
package cmd
