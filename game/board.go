package game

// MaxHeight is the tallest tower level including the dome.
const MaxHeight = 4

// Player identifies one of the two sides.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "1"
	case Player2:
		return "2"
	}
	return "?"
}

// BoardState is the decoded form of a position string: building heights per
// cell, the side to move, and both players' worker placements. It is a
// transient value - positions are cached and compared as strings, not as
// BoardStates.
type BoardState struct {
	Heights [NumCells]int
	Turn    Player
	Workers [2][2]Cell
}

// WorkerAt returns which player occupies the cell, or 0 if it is empty.
func (b *BoardState) WorkerAt(c Cell) Player {
	for p := 0; p < 2; p++ {
		for _, w := range b.Workers[p] {
			if w == c {
				return Player(p + 1)
			}
		}
	}
	return 0
}

// WorkersDistinct reports whether all four worker cells are distinct. The
// codec deliberately does not enforce this (the engine is trusted to emit
// consistent positions); callers that need the invariant check it here.
func (b *BoardState) WorkersDistinct() bool {
	seen := map[Cell]bool{}
	for p := 0; p < 2; p++ {
		for _, w := range b.Workers[p] {
			if seen[w] {
				return false
			}
			seen[w] = true
		}
	}
	return true
}
