// Package notify renders transient success and error notifications on
// the terminal.
package notify

import (
	"fmt"
	"io"

	"ppalog/internal/core/ports"
)

type Terminal struct {
	out io.Writer
	err io.Writer
}

// Ensure Terminal implements ports.Notifier.
var _ ports.Notifier = (*Terminal)(nil)

func NewTerminal(out, errOut io.Writer) *Terminal {
	return &Terminal{out: out, err: errOut}
}

func (t *Terminal) Success(title, description string) {
	fmt.Fprintf(t.out, "✔ %s: %s\n", title, description)
}

func (t *Terminal) Error(title, description string) {
	fmt.Fprintf(t.err, "✘ %s: %s\n", title, description)
}
