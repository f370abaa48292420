//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// stdinIsTTY reports whether stdin is an interactive terminal.
func stdinIsTTY() bool {
	_, err := unix.IoctlGetTermios(int(os.Stdin.Fd()), unix.TCGETS)
	return err == nil
}
