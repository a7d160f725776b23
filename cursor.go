package interm

// Direction is the vertical direction of a cursor movement.
type Direction int

const (
	None Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Delta is a relative row movement.
type Delta struct {
	Direction Direction
	Lines     uint8
}

// CursorTracker records the row the terminal cursor occupies, counted from
// the top of the block. A row equal to the block length means the cursor
// sits just below the last slot.
type CursorTracker struct {
	row uint8
}

// Row returns the tracked row.
func (c *CursorTracker) Row() int { return int(c.row) }

// DeltaTo computes the movement needed to reach target. It does not change
// the tracked row.
func (c *CursorTracker) DeltaTo(target uint8) Delta {
	switch {
	case c.row > target:
		return Delta{Direction: Up, Lines: c.row - target}
	case c.row < target:
		return Delta{Direction: Down, Lines: target - c.row}
	default:
		return Delta{Direction: None}
	}
}

// Commit records that the cursor now sits on target. Call it once per
// movement, after the movement bytes were written.
func (c *CursorTracker) Commit(target uint8) {
	c.row = target
}
