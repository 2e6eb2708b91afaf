package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActionKind tags one atomic step of a turn.
type ActionKind int

const (
	SelectWorker ActionKind = iota
	MoveWorker
	Build
	// Done is synthetic: the engine never lists it, the selector offers it
	// when the chosen prefix already forms a complete turn.
	Done
)

const doneWireType = "DONE"

var kindWireNames = map[ActionKind]string{
	SelectWorker: "select_worker",
	MoveWorker:   "move_worker",
	Build:        "build",
	Done:         doneWireType,
}

// Action is one atomic step of a turn. It is a comparable value type so
// actions can be deduplicated through map keys; Cell is meaningless for Done.
type Action struct {
	Kind ActionKind
	Cell Cell
}

// ActionSequence is one complete engine-enumerated turn: the actions that
// make it up and the position it leads to.
type ActionSequence struct {
	Actions []Action
	Result  string
}

// String is the compact glyph form used in engine thinking lines:
// "B3 >C3 @C4" reads select B3, move to C3, build at C4.
func (a Action) String() string {
	switch a.Kind {
	case SelectWorker:
		return a.Cell.String()
	case MoveWorker:
		return ">" + a.Cell.String()
	case Build:
		return "@" + a.Cell.String()
	case Done:
		return "<end>"
	}
	return fmt.Sprintf("Action(%d)", int(a.Kind))
}

// Label is the long form shown in selection menus.
func (a Action) Label() string {
	switch a.Kind {
	case SelectWorker:
		return "Select " + a.Cell.String()
	case MoveWorker:
		return "Move to " + a.Cell.String()
	case Build:
		return "Build at " + a.Cell.String()
	case Done:
		return "End Turn"
	}
	return fmt.Sprintf("Action(%d)", int(a.Kind))
}

// SequenceString joins a whole action list in glyph form.
func SequenceString(actions []Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// Compare orders actions by kind, then by target cell, giving selection
// menus a stable order.
func (a Action) Compare(b Action) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	return int(a.Cell) - int(b.Cell)
}

type actionWire struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON emits the engine wire form {"type":..., "value":...} with the
// cell as a lower-case coordinate label.
func (a Action) MarshalJSON() ([]byte, error) {
	name, ok := kindWireNames[a.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown action kind %d", int(a.Kind))
	}
	w := actionWire{Type: name}
	if a.Kind != Done {
		label, err := json.Marshal(strings.ToLower(a.Cell.String()))
		if err != nil {
			return nil, err
		}
		w.Value = label
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts the cell value as a coordinate label in either case,
// a numeric string, or a bare number. Action types outside the closed set
// fail decoding.
func (a *Action) UnmarshalJSON(data []byte) error {
	var w actionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var kind ActionKind
	found := false
	for k, name := range kindWireNames {
		if name == w.Type {
			kind, found = k, true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown action type %q", w.Type)
	}

	a.Kind = kind
	a.Cell = 0
	if kind == Done {
		return nil
	}

	cell, err := decodeCellValue(w.Value)
	if err != nil {
		return fmt.Errorf("action %q: %w", w.Type, err)
	}
	a.Cell = cell
	return nil
}

func decodeCellValue(raw json.RawMessage) (Cell, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing cell value")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseCell(s)
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("cell value %s is neither a label nor an index", string(raw))
	}
	c := Cell(n)
	if !c.Valid() {
		return 0, fmt.Errorf("cell index %d: %w", n, ErrWorkerRange)
	}
	return c, nil
}
