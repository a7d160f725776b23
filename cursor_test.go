package interm

import "testing"

func TestDeltaToDirectionAndMagnitude(t *testing.T) {
	c := CursorTracker{row: 4}
	if d := c.DeltaTo(1); d.Direction != Up || d.Lines != 3 {
		t.Fatalf("expected up 3, got %s %d", d.Direction, d.Lines)
	}
	if d := c.DeltaTo(9); d.Direction != Down || d.Lines != 5 {
		t.Fatalf("expected down 5, got %s %d", d.Direction, d.Lines)
	}
	if d := c.DeltaTo(4); d.Direction != None || d.Lines != 0 {
		t.Fatalf("expected no movement, got %s %d", d.Direction, d.Lines)
	}
	if c.Row() != 4 {
		t.Fatalf("DeltaTo must not change the tracked row, got %d", c.Row())
	}
}

func TestDeltaToCoversFullRowRange(t *testing.T) {
	c := CursorTracker{row: MaxLines}
	d := c.DeltaTo(0)
	if d.Direction != Up || d.Lines != MaxLines {
		t.Fatalf("expected up %d, got %s %d", MaxLines, d.Direction, d.Lines)
	}
	c.Commit(0)
	d = c.DeltaTo(MaxLines)
	if d.Direction != Down || d.Lines != MaxLines {
		t.Fatalf("expected down %d, got %s %d", MaxLines, d.Direction, d.Lines)
	}
}

func TestCommitSetsRow(t *testing.T) {
	var c CursorTracker
	c.Commit(7)
	if c.Row() != 7 {
		t.Fatalf("expected row 7, got %d", c.Row())
	}
}
