package interm

// Slot is one line of a Block. Its row is fixed when the Block is built;
// only the content changes. Slot values handed out by a Block are copies
// and stay valid references to their row for the Block's lifetime.
type Slot struct {
	owner   *Block
	row     uint8
	content string
}

// Row returns the slot's offset from the top of its block.
func (s Slot) Row() int { return int(s.row) }

// Content returns the text the slot held when this value was taken.
func (s Slot) Content() string { return s.content }
