package cratesio

import (
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

func IsTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd()))
}

// IsTerminalWriter check whether w is an *os.File attached to a terminal
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}
