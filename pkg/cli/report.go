package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/funlang/internal/config"
)

const (
	ansiBoldRed = "\x1b[1;31m"
	ansiReset   = "\x1b[0m"
)

// reporter writes diagnostics to stderr, colored when that is a terminal.
type reporter struct {
	w     io.Writer
	color bool
}

func newReporter(w io.Writer, mode string) *reporter {
	return &reporter{w: w, color: useColor(w, mode)}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *reporter) header(msg string) {
	if r.color {
		fmt.Fprintf(r.w, "%s%s%s\n", ansiBoldRed, msg, ansiReset)
		return
	}
	fmt.Fprintln(r.w, msg)
}

func (r *reporter) line(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}
