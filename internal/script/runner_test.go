package script

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dpouris/interm"
	"github.com/dpouris/interm/internal/workload"
)

func newRunner(t *testing.T, contents ...string) (*Runner, *interm.Block, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	b, err := interm.New(&out, contents)
	if err != nil {
		t.Fatalf("new block: %v", err)
	}
	out.Reset()
	return NewRunner(workload.NewShared(b, 0), nil), b, &out
}

func TestScriptUpdatesSlots(t *testing.T) {
	r, b, out := newRunner(t, "A", "B", "C")
	src := `
local interm = require("interm")
for i = 0, interm.lines() - 1 do
  interm.update(i, interm.content(i) .. " done")
end
`
	if err := r.RunString(context.Background(), src); err != nil {
		t.Fatalf("run: %v", err)
	}
	for i, want := range []string{"A done", "B done", "C done"} {
		if s, _ := b.Slot(i); s.Content() != want {
			t.Fatalf("slot %d: expected %q, got %q", i, want, s.Content())
		}
	}
	if b.Row() != 2 {
		t.Fatalf("expected cursor on last row, got %d", b.Row())
	}
	if !strings.HasPrefix(out.String(), "\x1b[3F\r\x1b[2K\r\rA done\r") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestScriptClearAllAndMove(t *testing.T) {
	r, b, _ := newRunner(t, "A", "B", "C")
	src := `
local interm = require("interm")
interm.move_to(1)
interm.clear_line()
interm.clear_all()
`
	if err := r.RunString(context.Background(), src); err != nil {
		t.Fatalf("run: %v", err)
	}
	if b.Row() != 0 {
		t.Fatalf("expected cursor on row 0, got %d", b.Row())
	}
}

func TestScriptSurfacesBlockErrors(t *testing.T) {
	r, _, _ := newRunner(t, "A")
	err := r.RunString(context.Background(), `require("interm").update(4, "x")`)
	if err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if !strings.Contains(err.Error(), "index not found") {
		t.Fatalf("expected index error, got %v", err)
	}
}

func TestScriptSleepHonorsCancel(t *testing.T) {
	r, _, _ := newRunner(t, "A")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.RunString(ctx, `require("interm").sleep(10000)`)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
