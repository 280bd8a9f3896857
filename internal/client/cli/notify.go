package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ColorNotifier implements services.Notifier on a terminal: green for
// successes, red for failures. It is the CLI's stand-in for the toast
// popups of a graphical dashboard.
type ColorNotifier struct {
	w       io.Writer
	success *color.Color
	failure *color.Color
}

func NewColorNotifier(w io.Writer) *ColorNotifier {
	return &ColorNotifier{
		w:       w,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

func (n *ColorNotifier) Success(msg string) {
	fmt.Fprintln(n.w, n.success.Sprint("✔ "+msg))
}

func (n *ColorNotifier) Error(msg string) {
	fmt.Fprintln(n.w, n.failure.Sprint("✖ "+msg))
}
