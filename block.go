// Package interm rewrites a fixed block of terminal lines in place.
//
// A Block reserves one terminal row per slot below the current cursor
// position and then moves between those rows with relative cursor
// movements, so each slot can be redrawn without touching the others.
//
// A Block assumes it is the only writer positioning the cursor on its
// output stream: keep at most one live Block per stream, and do not write
// to the stream through other paths while it is alive. A Block is not safe
// for concurrent use; callers that update it from several goroutines must
// hold one lock per Block around each call, and release it before sleeping.
package interm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// MaxLines is the largest number of slots a Block can manage.
const MaxLines = 255

// Block owns a fixed set of slots, the tracked cursor row and the renderer
// writing to the terminal.
type Block struct {
	slots    []Slot
	cursor   CursorTracker
	renderer *Renderer
	logger   *slog.Logger
	closed   bool
}

// Option configures a Block.
type Option func(*Block)

// WithLogger sets the logger used for debug traces and teardown failures.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Block) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New builds a block with one slot per entry of contents and reserves its
// rows on w by emitting one newline per slot. The cursor is left just below
// the block. Call Close when done to restore the cursor.
func New(w io.Writer, contents []string, opts ...Option) (*Block, error) {
	if len(contents) == 0 {
		return nil, ErrEmptyLineSet
	}
	if len(contents) > MaxLines {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyLines, len(contents))
	}
	b := &Block{
		slots:    make([]Slot, len(contents)),
		renderer: NewRenderer(w),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	for i, content := range contents {
		b.slots[i] = Slot{owner: b, row: uint8(i), content: content}
	}
	b.cursor.Commit(uint8(len(contents)))
	if err := b.renderer.Reserve(len(contents)); err != nil {
		return nil, err
	}
	b.logger.Debug("block reserved", "lines", len(contents))
	return b, nil
}

// Run builds a block, hides the cursor and calls fn. The block is closed on
// every exit path, including a panic in fn, so the cursor is always shown
// again. A teardown failure is joined with fn's error.
func Run(w io.Writer, contents []string, fn func(*Block) error, opts ...Option) (err error) {
	b, err := New(w, contents, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := b.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	if err := b.HideCursor(); err != nil {
		return err
	}
	return fn(b)
}

// Len returns the number of slots.
func (b *Block) Len() int { return len(b.slots) }

// Row returns the row the cursor is tracked on. Len() means below the block.
func (b *Block) Row() int { return b.cursor.Row() }

// Slot returns a copy of the slot at idx.
func (b *Block) Slot(idx int) (Slot, error) {
	if idx < 0 || idx >= len(b.slots) {
		return Slot{}, fmt.Errorf("%w: %d", ErrIndexNotFound, idx)
	}
	return b.slots[idx], nil
}

// Slots returns copies of all slots, top to bottom.
func (b *Block) Slots() []Slot {
	out := make([]Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

// GotoIndex moves the cursor to column 0 of the slot at idx.
func (b *Block) GotoIndex(idx int) error {
	if idx < 0 || idx >= len(b.slots) {
		return fmt.Errorf("%w: %d", ErrIndexNotFound, idx)
	}
	return b.gotoRow(b.slots[idx].row)
}

// GotoSlot moves the cursor to column 0 of s. Slots taken from another
// block are rejected.
func (b *Block) GotoSlot(s Slot) error {
	if !b.owns(s) {
		return fmt.Errorf("%w: row %d", ErrSlotNotFound, s.row)
	}
	return b.gotoRow(s.row)
}

// Update stores content in s and redraws its row, erasing the old text
// first when clearFirst is set. The stored content is replaced even when
// the write fails.
func (b *Block) Update(s Slot, content string, clearFirst bool) error {
	if !b.owns(s) {
		return fmt.Errorf("%w: row %d", ErrSlotNotFound, s.row)
	}
	b.slots[s.row].content = content
	if err := b.gotoRow(s.row); err != nil {
		return err
	}
	if clearFirst {
		if err := b.renderer.EraseLine(); err != nil {
			return err
		}
	}
	return b.renderer.WriteText(content)
}

// UpdateIndex is Update for the slot at idx.
func (b *Block) UpdateIndex(idx int, content string, clearFirst bool) error {
	s, err := b.Slot(idx)
	if err != nil {
		return err
	}
	return b.Update(s, content, clearFirst)
}

// ClearLine erases the row the cursor is on without moving it.
func (b *Block) ClearLine() error {
	return b.renderer.EraseLine()
}

// ClearAll erases the block from the bottom up and leaves the cursor on the
// first row. The first row itself is not erased.
func (b *Block) ClearAll() error {
	last := len(b.slots) - 1
	if err := b.GotoIndex(last); err != nil {
		return err
	}
	// TODO(dpouris): row 0 is left as is; decide whether ClearAll should
	// erase it as well.
	for i := 0; i < last; i++ {
		if err := b.renderer.EraseLine(); err != nil {
			return err
		}
		target := b.cursor.row - 1
		if err := b.renderer.MoveUp(1); err != nil {
			return err
		}
		b.cursor.Commit(target)
	}
	return nil
}

// HideCursor hides the terminal cursor.
func (b *Block) HideCursor() error {
	return b.renderer.SetCursorVisible(false)
}

// ShowCursor shows the terminal cursor.
func (b *Block) ShowCursor() error {
	return b.renderer.SetCursorVisible(true)
}

// Close shows the cursor. Only the first call writes; later calls return
// nil. A failure is logged and returned.
func (b *Block) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.ShowCursor(); err != nil {
		b.logger.Error("restore cursor visibility", "err", err)
		return err
	}
	return nil
}

func (b *Block) owns(s Slot) bool {
	return s.owner == b && int(s.row) < len(b.slots)
}

func (b *Block) gotoRow(row uint8) error {
	delta := b.cursor.DeltaTo(row)
	if err := b.renderer.Move(delta); err != nil {
		return err
	}
	b.cursor.Commit(row)
	if delta.Direction != None {
		b.logger.Debug("cursor moved", "direction", delta.Direction, "lines", delta.Lines, "row", row)
	}
	return b.renderer.CarriageReturn()
}
