// Package cli holds the terminal output shared by the cidl commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed)

// Errorf prints a red line to w.
func Errorf(w io.Writer, format string, args ...any) {
	red.Fprintln(w, fmt.Sprintf(format, args...))
}

// Fail reports err on stderr and exits.
func Fail(err error) {
	Errorf(os.Stderr, "%s", err)
	os.Exit(1)
}

func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
