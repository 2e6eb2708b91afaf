package game

import (
	"fmt"
	"strconv"
	"strings"
)

// NumCells is the number of squares on the board (5x5).
const NumCells = 25

// Cell identifies one board square as a row-major index from the top-left
// corner: columns A-E left to right, rows 1-5 with row 5 at the top, so
// index = (5-row)*5 + column.
type Cell int

const colLabels = "ABCDE"
const rowLabels = "12345"

// Valid reports whether the cell is on the board.
func (c Cell) Valid() bool {
	return c >= 0 && c < NumCells
}

// String formats the cell as an upper-case coordinate label like "B3".
func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Cell(%d)", int(c))
	}
	col := int(c) % 5
	row := 4 - int(c)/5
	return string(colLabels[col]) + string(rowLabels[row])
}

// ParseCell accepts a two-character coordinate label in either case ("B3",
// "b3") or a base-10 index ("11") and returns the cell index.
func ParseCell(token string) (Cell, error) {
	token = strings.TrimSpace(token)
	if n, err := strconv.Atoi(token); err == nil {
		c := Cell(n)
		if !c.Valid() {
			return 0, fmt.Errorf("cell index %d: %w", n, ErrWorkerRange)
		}
		return c, nil
	}
	if len(token) != 2 {
		return 0, fmt.Errorf("cell token %q: %w", token, ErrWorkerField)
	}
	upper := strings.ToUpper(token)
	col := strings.IndexByte(colLabels, upper[0])
	row := strings.IndexByte(rowLabels, upper[1])
	if col < 0 || row < 0 {
		return 0, fmt.Errorf("cell token %q: %w", token, ErrWorkerField)
	}
	return Cell((4-row)*5 + col), nil
}
