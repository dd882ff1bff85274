package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Error types, in the order they can occur in a run
const (
	errUsage  = "usage"  // bad flags or arguments
	errConfig = "config" // unreadable or invalid config file
	errInput  = "input"  // missing or unreadable source
)

// CLIError is a user-facing failure with optional context and a fix
type CLIError struct {
	Type    string // errUsage, errConfig or errInput; empty for anything else
	Message string
	Details string
	Hint    string
}

func (e *CLIError) Error() string {
	parts := []string{e.Message}
	if e.Details != "" {
		parts = append(parts, e.Details)
	}
	if e.Hint != "" {
		parts = append(parts, e.Hint)
	}
	return strings.Join(parts, "\n")
}

// label heads the formatted error
func (e *CLIError) label() string {
	switch e.Type {
	case errUsage:
		return "Usage error: "
	case errConfig:
		return "Config error: "
	case errInput:
		return "Input error: "
	}
	return "Error: "
}

// exitCode is 2 for usage errors, 1 for everything else
func exitCode(err error) int {
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Type == errUsage {
		return 2
	}
	return 1
}

// FormatError writes err for the terminal. CLIErrors get their type label,
// details and hint; usage errors also point at --help.
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
		return
	}

	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize(cliErr.label(), ColorRed, useColor), cliErr.Message)
	if cliErr.Details != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", cliErr.Details)
	}
	if cliErr.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), cliErr.Hint)
	}
	if cliErr.Type == errUsage {
		_, _ = fmt.Fprintf(w, "%s\n", Colorize("Run 'clex --help' for usage.", ColorGray, useColor))
	}
}
