package session

// PositionHistory is a linear undo/redo log of position strings. It is never
// empty and the cursor always points at a valid entry. Adding a position
// while not at the tail prunes the redo branch first.
type PositionHistory struct {
	positions []string
	cursor    int
}

// NewPositionHistory seeds the log with the starting position.
func NewPositionHistory(initial string) *PositionHistory {
	return &PositionHistory{positions: []string{initial}}
}

// Current returns the position at the cursor.
func (h *PositionHistory) Current() string {
	return h.positions[h.cursor]
}

// AddNext appends a position after the cursor, discarding any redo entries,
// and moves the cursor onto it.
func (h *PositionHistory) AddNext(position string) {
	if h.cursor < len(h.positions)-1 {
		h.positions = h.positions[:h.cursor+1]
	}
	h.positions = append(h.positions, position)
	h.cursor++
}

// Undo steps the cursor back one position. At the oldest entry it reports
// false and changes nothing.
func (h *PositionHistory) Undo() bool {
	if h.cursor > 0 {
		h.cursor--
		return true
	}
	return false
}

// Redo steps the cursor forward one position. At the newest entry it reports
// false and changes nothing.
func (h *PositionHistory) Redo() bool {
	if h.cursor < len(h.positions)-1 {
		h.cursor++
		return true
	}
	return false
}

// Len returns the number of stored positions.
func (h *PositionHistory) Len() int {
	return len(h.positions)
}
