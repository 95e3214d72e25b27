// Package prompt provides simple interactive prompts.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation with a default answer
//   - [TextInput]: Single-line text input with a default value
//   - [Select]: Single selection from a list
//   - [MultiSelect]: Multiple selection with space-to-toggle
//
// Every prompt reports cancellation (esc/ctrl+c) separately from its
// value so flows can fall back to the menu instead of acting on
// half-entered input.
package prompt
