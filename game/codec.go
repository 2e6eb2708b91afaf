package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Codec failure modes. All are recoverable: Parse never mutates anything, the
// caller just gets told the text was bad.
var (
	ErrSections    = errors.New("position must have exactly 4 sections separated by '/'")
	ErrHeight      = errors.New("height map must be exactly 25 digits 0-4")
	ErrTurn        = errors.New("turn marker must be \"1\" or \"2\"")
	ErrWorkerField = errors.New("worker field must list 2 cells")
	ErrWorkerRange = errors.New("worker cell out of range")
)

// Parse decodes a position string of the form
//
//	<25 height digits>/<turn>/<p1 workers>/<p2 workers>
//
// Worker tokens are coordinate labels or base-10 indices, optionally behind a
// god prefix like "mortal:" as emitted by the engine. Worker distinctness is
// not checked here, see BoardState.WorkersDistinct.
func Parse(text string) (BoardState, error) {
	var b BoardState

	compact := strings.Join(strings.Fields(text), "")
	sections := strings.Split(compact, "/")
	if len(sections) != 4 {
		return b, fmt.Errorf("got %d sections: %w", len(sections), ErrSections)
	}

	heights := sections[0]
	if len(heights) != NumCells {
		return b, fmt.Errorf("got %d height digits: %w", len(heights), ErrHeight)
	}
	for i := 0; i < NumCells; i++ {
		h := heights[i]
		if h < '0' || h > '0'+MaxHeight {
			return b, fmt.Errorf("height %q at index %d: %w", string(h), i, ErrHeight)
		}
		b.Heights[i] = int(h - '0')
	}

	switch sections[1] {
	case "1":
		b.Turn = Player1
	case "2":
		b.Turn = Player2
	default:
		return b, fmt.Errorf("got %q: %w", sections[1], ErrTurn)
	}

	for p := 0; p < 2; p++ {
		workers, err := parseWorkerField(sections[2+p])
		if err != nil {
			return b, fmt.Errorf("player %d workers: %w", p+1, err)
		}
		b.Workers[p] = workers
	}
	return b, nil
}

func parseWorkerField(field string) ([2]Cell, error) {
	var workers [2]Cell

	// The engine tags worker lists with the god in play ("mortal:B3,D3") and
	// marks some positions with a leading '#'. Neither affects the cells.
	field = strings.TrimPrefix(field, "#")
	if i := strings.IndexByte(field, ':'); i >= 0 {
		field = field[i+1:]
	}

	tokens := strings.Split(field, ",")
	if len(tokens) != 2 {
		return workers, fmt.Errorf("got %d tokens: %w", len(tokens), ErrWorkerField)
	}
	for i, token := range tokens {
		cell, err := ParseCell(token)
		if err != nil {
			return workers, err
		}
		workers[i] = cell
	}
	return workers, nil
}

// String encodes the board back into position-string form, always emitting
// workers as integer indices. Parsing the result yields an identical
// BoardState; byte equality with the original text is not guaranteed.
func (b BoardState) String() string {
	var sb strings.Builder
	for _, h := range b.Heights {
		sb.WriteByte(byte('0' + h))
	}
	sb.WriteByte('/')
	sb.WriteString(b.Turn.String())
	for p := 0; p < 2; p++ {
		sb.WriteByte('/')
		for i, w := range b.Workers[p] {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(w)))
		}
	}
	return sb.String()
}
