//go:build !linux

package main

import "os"

// stdinIsTTY reports whether stdin is an interactive terminal.
func stdinIsTTY() bool {
	st, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (st.Mode() & os.ModeCharDevice) != 0
}
