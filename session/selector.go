package session

import (
	"errors"
	"slices"

	"santorini/game"
)

// Contract violations: the chosen prefix can only diverge from every future,
// or resolve ambiguously, when the caller fed the selector an action it never
// offered or the engine's future set is inconsistent. The session recovers by
// rebuilding the selector from cache.
var (
	ErrNoConsistentFuture  = errors.New("chosen actions match no future")
	ErrAmbiguousResolution = errors.New("completed turn matches more than one future")
)

// ActionSelector narrows one position's engine-enumerated futures as the user
// supplies one atomic action at a time. It is bound to a single position and
// is discarded whenever the current position changes or it resolves.
type ActionSelector struct {
	position string
	futures  []game.ActionSequence
	prefix   []game.Action
}

func NewActionSelector(position string, futures []game.ActionSequence) *ActionSelector {
	return &ActionSelector{position: position, futures: futures}
}

// Position returns the position string this selector was built for.
func (s *ActionSelector) Position() string {
	return s.position
}

// Add appends one action to the chosen prefix. Callers must only pass members
// of NextActions; anything else surfaces later as a contract violation from
// Resolve, not a panic.
func (s *ActionSelector) Add(action game.Action) {
	s.prefix = append(s.prefix, action)
}

// effectivePrefix is the chosen prefix with a trailing Done stripped; Done is
// synthetic and never appears in a future's action list.
func (s *ActionSelector) effectivePrefix() ([]game.Action, bool) {
	n := len(s.prefix)
	if n > 0 && s.prefix[n-1].Kind == game.Done {
		return s.prefix[:n-1], true
	}
	return s.prefix, false
}

// Matching returns the futures still consistent with the chosen prefix. With
// a Done-terminated prefix only exact-length matches count; otherwise any
// future extending the prefix does.
func (s *ActionSelector) Matching() []game.ActionSequence {
	prefix, done := s.effectivePrefix()

	var result []game.ActionSequence
	for _, future := range s.futures {
		if done && len(future.Actions) != len(prefix) {
			continue
		}
		if len(future.Actions) < len(prefix) {
			continue
		}
		if slices.Equal(future.Actions[:len(prefix)], prefix) {
			result = append(result, future)
		}
	}
	return result
}

// NextActions unions the next step of every matching future, deduplicated
// structurally and sorted for a stable menu. A future whose action list the
// prefix already covers in full contributes the synthetic Done: turns have
// variable length, and "end turn now" must stay on offer whenever some
// complete sequence equals the prefix exactly.
func (s *ActionSelector) NextActions() []game.Action {
	prefix, _ := s.effectivePrefix()

	// Always non-nil: presenters reserve nil for futures still awaited, an
	// empty slice means a position with no legal turns.
	seen := make(map[game.Action]bool)
	result := []game.Action{}
	for _, future := range s.Matching() {
		var next game.Action
		switch {
		case len(future.Actions) == len(prefix):
			next = game.Action{Kind: game.Done}
		case len(future.Actions) > len(prefix):
			next = future.Actions[len(prefix)]
		default:
			continue
		}
		if !seen[next] {
			seen[next] = true
			result = append(result, next)
		}
	}

	slices.SortFunc(result, game.Action.Compare)
	return result
}

// Resolve inspects the matching futures after an Add. Exactly one match whose
// action list the prefix covers in full resolves the turn to that future's
// resulting position. More than one keeps the selector in the selecting
// state, except for a Done-terminated prefix, where ambiguity means the
// future set itself is inconsistent. Zero matches means the prefix diverged
// from every future.
func (s *ActionSelector) Resolve() (game.ActionSequence, bool, error) {
	prefix, done := s.effectivePrefix()
	matching := s.Matching()

	switch {
	case len(matching) == 0:
		return game.ActionSequence{}, false, ErrNoConsistentFuture
	case len(matching) == 1 && len(matching[0].Actions) == len(prefix):
		return matching[0], true, nil
	case done:
		return game.ActionSequence{}, false, ErrAmbiguousResolution
	}
	return game.ActionSequence{}, false, nil
}
