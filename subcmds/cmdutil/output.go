// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"fmt"
	"io"

	"github.com/bvk/futuresbot/orders"
	"golang.org/x/term"
)

const (
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorReset = "\033[0m"
)

// IsTerminal returns true if w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Colorize wraps s in green or red escape codes when w is a terminal.
func Colorize(w io.Writer, good bool, s string) string {
	if !IsTerminal(w) {
		return s
	}
	if good {
		return colorGreen + s + colorReset
	}
	return colorRed + s + colorReset
}

// PrintResult writes the summary of an order placement result.
func PrintResult(w io.Writer, r *orders.Result) {
	fmt.Fprintln(w, Colorize(w, r.OK(), r.Summary()))
}
