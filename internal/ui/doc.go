// Package ui provides the color themes shared by the CLI output and the
// terminal form: ANSI escape codes for plain output and lipgloss colors for
// the bubbletea views.
package ui
