package engine

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"santorini/game"
)

// Reply is one structured message off the engine's reply stream. The set is
// closed: started, next_moves, best_move.
type Reply interface {
	reply()
}

// Started signals the engine is up and ready for commands.
type Started struct{}

// NextMoves carries the complete set of legal turn futures for the echoed
// start position.
type NextMoves struct {
	StartState string
	NextStates []game.ActionSequence
}

// BestMoveMeta is the search detail attached to a best_move reply.
type BestMoveMeta struct {
	Actions         []game.Action `json:"actions"`
	Score           float64       `json:"score"`
	ElapsedSeconds  float64       `json:"elapsed_seconds"`
	CalculatedDepth int           `json:"calculated_depth"`
}

// BestMove is the engine's current principal variation for the echoed start
// position. The engine streams these as the search deepens.
type BestMove struct {
	StartState string       `json:"start_state"`
	NextState  string       `json:"next_state"`
	Trigger    string       `json:"trigger"`
	Meta       BestMoveMeta `json:"meta"`
}

func (*Started) reply()   {}
func (*NextMoves) reply() {}
func (*BestMove) reply()  {}

type nextStateWire struct {
	Actions   []json.RawMessage `json:"actions"`
	NextState string            `json:"next_state"`
}

type nextMovesWire struct {
	StartState string          `json:"start_state"`
	NextStates []nextStateWire `json:"next_states"`
}

// DecodeReply parses one reply line. A malformed line or unknown type is an
// error for the caller to log and drop; it never halts the stream. Inside a
// next_moves reply, a future carrying an action outside the known set drops
// that future alone.
func DecodeReply(line []byte) (Reply, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(line, &head); err != nil {
		return nil, fmt.Errorf("reply is not a JSON object: %w", err)
	}

	switch head.Type {
	case "started":
		return &Started{}, nil

	case "next_moves":
		var wire nextMovesWire
		if err := json.Unmarshal(line, &wire); err != nil {
			return nil, fmt.Errorf("next_moves: %w", err)
		}
		reply := &NextMoves{StartState: wire.StartState}
		for _, ns := range wire.NextStates {
			future, err := decodeFuture(ns)
			if err != nil {
				log.Warn().Err(err).Str("position", wire.StartState).
					Msg("dropping future with undecodable action")
				continue
			}
			reply.NextStates = append(reply.NextStates, future)
		}
		return reply, nil

	case "best_move":
		var reply BestMove
		if err := json.Unmarshal(line, &reply); err != nil {
			return nil, fmt.Errorf("best_move: %w", err)
		}
		return &reply, nil
	}
	return nil, fmt.Errorf("unknown reply type %q", head.Type)
}

func decodeFuture(wire nextStateWire) (game.ActionSequence, error) {
	future := game.ActionSequence{Result: wire.NextState}
	for _, raw := range wire.Actions {
		var action game.Action
		if err := json.Unmarshal(raw, &action); err != nil {
			return game.ActionSequence{}, err
		}
		future.Actions = append(future.Actions, action)
	}
	return future, nil
}
