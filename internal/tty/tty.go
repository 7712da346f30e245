// Package tty reports whether the standard streams are attached to a terminal.
package tty

import (
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

var (
	stdinIsTerminal  int32 = -1 // -1 = unchecked, 0 = no, 1 = yes
	stdoutIsTerminal int32 = -1
)

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// Stdin reports whether standard input is a terminal.
func Stdin() bool {
	return isTerminal(int(os.Stdin.Fd()), &stdinIsTerminal)
}

// Stdout reports whether standard output is a terminal.
func Stdout() bool {
	return isTerminal(int(os.Stdout.Fd()), &stdoutIsTerminal)
}

// Interactive reports whether both stdin and stdout are terminals, as a full-screen
// UI requires.
func Interactive() bool {
	return Stdin() && Stdout()
}

// IsWriterTerminal reports whether w is a terminal file.
func IsWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
