// Package termio inspects the output stream a block is drawn on.
package termio

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Terminal wraps an output stream and answers questions about it.
type Terminal struct {
	out io.Writer
	fd  uintptr
	tty bool
}

// NewTerminal binds out. Streams that are not files are never terminals.
func NewTerminal(out io.Writer) *Terminal {
	t := &Terminal{out: out}
	if f, ok := out.(*os.File); ok {
		t.fd = f.Fd()
		t.tty = isatty.IsTerminal(t.fd) || isatty.IsCygwinTerminal(t.fd)
	}
	return t
}

// Writer returns the wrapped stream.
func (t *Terminal) Writer() io.Writer { return t.out }

// IsTTY reports whether the stream is an interactive terminal.
func (t *Terminal) IsTTY() bool { return t.tty }

// Size returns terminal dimensions, or 80x24 when they cannot be read.
func (t *Terminal) Size() (width int, height int) {
	if !t.tty {
		return defaultWidth, defaultHeight
	}
	w, h, err := term.GetSize(int(t.fd))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// Width returns terminal width.
func (t *Terminal) Width() int {
	w, _ := t.Size()
	return w
}

// Height returns terminal height.
func (t *Terminal) Height() int {
	_, h := t.Size()
	return h
}
