package interm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/morikuni/aec"
)

// Renderer turns cursor intents into escape sequences and writes them.
// Every call writes and flushes before returning; nothing stays buffered
// between calls.
type Renderer struct {
	dst io.Writer
	out *bufio.Writer
}

// NewRenderer wraps w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{dst: w, out: bufio.NewWriter(w)}
}

// MoveUp moves the cursor n rows up, to column 0.
func (r *Renderer) MoveUp(n uint8) error {
	if n == 0 {
		return nil
	}
	return r.emit("move up", aec.PreviousLine(uint(n)).String())
}

// MoveDown moves the cursor n rows down, to column 0.
func (r *Renderer) MoveDown(n uint8) error {
	if n == 0 {
		return nil
	}
	return r.emit("move down", aec.NextLine(uint(n)).String())
}

// Move emits the movement described by d.
func (r *Renderer) Move(d Delta) error {
	switch d.Direction {
	case Up:
		return r.MoveUp(d.Lines)
	case Down:
		return r.MoveDown(d.Lines)
	default:
		return nil
	}
}

// EraseLine clears the current row and returns to column 0.
func (r *Renderer) EraseLine() error {
	return r.emit("erase line", aec.EraseLine(aec.EraseModes.All).String()+"\r")
}

// CarriageReturn returns to column 0 without changing rows.
func (r *Renderer) CarriageReturn() error {
	return r.emit("carriage return", "\r")
}

// WriteText writes s so that it starts and ends at column 0.
func (r *Renderer) WriteText(s string) error {
	return r.emit("write text", "\r"+s+"\r")
}

// Reserve emits n newlines.
func (r *Renderer) Reserve(n int) error {
	return r.emit("reserve", strings.Repeat("\n", n))
}

// SetCursorVisible shows or hides the cursor.
func (r *Renderer) SetCursorVisible(visible bool) error {
	if visible {
		return r.emit("show cursor", aec.Show.String())
	}
	return r.emit("hide cursor", aec.Hide.String())
}

func (r *Renderer) emit(op, seq string) error {
	if _, err := r.out.WriteString(seq); err != nil {
		r.out.Reset(r.dst)
		return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
	}
	if err := r.out.Flush(); err != nil {
		// bufio keeps the first error forever; drop it so later calls,
		// including teardown, get a fresh attempt.
		r.out.Reset(r.dst)
		return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
	}
	return nil
}
