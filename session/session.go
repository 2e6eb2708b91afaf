package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"santorini/engine"
	"santorini/game"
)

// Commander is the outbound half of the engine protocol, satisfied by
// engine.Client.
type Commander interface {
	SetPosition(position string) error
	NextMoves(position string) error
}

// Presenter receives display snapshots. Rendering is a replaceable
// collaborator; the session never prints anything itself.
type Presenter interface {
	// Position shows the decoded board for the current position string.
	Position(board game.BoardState, position string)
	// Choices shows the actions on offer. A nil slice means futures for the
	// current position are still awaited from the engine; an empty non-nil
	// slice means the position is cached with no legal turns.
	Choices(actions []game.Action)
	// Thinking shows one engine search line.
	Thinking(line string)
}

// Session owns the interactive state: the position history, the futures
// cache, the active selector, and the last engine line. It is not safe for
// concurrent use - every call, including HandleReply, must come from the same
// goroutine, so a user event and an arriving reply can never race.
type Session struct {
	history  *PositionHistory
	cache    *MoveCache
	selector *ActionSelector
	options  []game.Action
	lastBest *engine.BestMove

	commander Commander
	presenter Presenter
	rng       *rand.Rand
}

// New validates the seed position, seeds the history with it, and enters it.
func New(seed string, commander Commander, presenter Presenter) (*Session, error) {
	seed = strings.TrimSpace(seed)
	if _, err := game.Parse(seed); err != nil {
		return nil, fmt.Errorf("seed position: %w", err)
	}
	s := &Session{
		history:   NewPositionHistory(seed),
		cache:     NewMoveCache(),
		commander: commander,
		presenter: presenter,
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	s.enterCurrent()
	return s, nil
}

// Current returns the position string on display.
func (s *Session) Current() string {
	return s.history.Current()
}

// Options returns the actions currently on offer, nil while futures are
// awaited.
func (s *Session) Options() []game.Action {
	return s.options
}

// SetPosition validates a position string and makes it current. Parse
// failures are recoverable: nothing changes and the error goes back to the
// caller.
func (s *Session) SetPosition(text string) error {
	text = strings.TrimSpace(text)
	if _, err := game.Parse(text); err != nil {
		return err
	}
	s.history.AddNext(text)
	s.enterCurrent()
	return nil
}

// Undo steps back one position; at the oldest entry it reports false.
func (s *Session) Undo() bool {
	if !s.history.Undo() {
		return false
	}
	s.enterCurrent()
	return true
}

// Redo steps forward one position; at the newest entry it reports false.
func (s *Session) Redo() bool {
	if !s.history.Redo() {
		return false
	}
	s.enterCurrent()
	return true
}

// Choose picks the i-th offered action and narrows the selector. A unique
// remaining future commits its resulting position; ambiguity re-presents the
// narrowed options; a contract violation rebuilds the selector from cache.
func (s *Session) Choose(i int) error {
	if s.selector == nil {
		return errors.New("no actions available yet for this position")
	}
	if i < 0 || i >= len(s.options) {
		return fmt.Errorf("choice %d out of range, %d actions offered", i, len(s.options))
	}
	s.selector.Add(s.options[i])

	future, resolved, err := s.selector.Resolve()
	switch {
	case err != nil:
		// Caller/engine desync. Throw the selector away and restart the turn
		// from the cached futures rather than propagate a fatal failure.
		log.Warn().Err(err).Str("position", s.Current()).
			Msg("action selection diverged, rebuilding selector")
		s.selector = nil
		s.refreshSelection()
	case resolved:
		s.history.AddNext(future.Result)
		s.enterCurrent()
	default:
		s.presentChoices()
	}
	return nil
}

// PlayBest adopts the engine's last best_move line, provided it was computed
// for the position on display.
func (s *Session) PlayBest() error {
	if s.lastBest == nil || s.lastBest.StartState != s.Current() {
		return errors.New("no engine move for the current position")
	}
	return s.SetPosition(s.lastBest.NextState)
}

// PlayRandom adopts a uniformly random cached future for the current
// position, a quick way to wander into unexplored lines.
func (s *Session) PlayRandom() error {
	futures, ok := s.cache.Get(s.Current())
	if !ok {
		return errors.New("futures for the current position are not cached yet")
	}
	if len(futures) == 0 {
		return errors.New("no legal turns from the current position")
	}
	future := futures[s.rng.Intn(len(futures))]
	s.history.AddNext(future.Result)
	s.enterCurrent()
	return nil
}

// HandleReply folds one asynchronous engine message into the session. Replies
// are matched to context purely by the position string they echo: a stale
// next_moves still lands in the cache for later reuse, but never touches a
// selector bound to a different position.
func (s *Session) HandleReply(reply engine.Reply) {
	switch m := reply.(type) {
	case *engine.Started:
		// Engine (re)started: push the current position to it again.
		s.enterCurrent()
	case *engine.NextMoves:
		if !s.cache.Put(m.StartState, m.NextStates) {
			log.Debug().Str("position", m.StartState).Msg("futures already cached")
		}
		if m.StartState == s.Current() {
			s.refreshSelection()
		}
	case *engine.BestMove:
		if m.StartState != s.Current() {
			log.Debug().Str("position", m.StartState).Msg("skipping best move for non-current position")
			return
		}
		s.lastBest = m
		s.presenter.Thinking(thinkingLine(m))
	default:
		log.Warn().Type("reply", reply).Msg("ignoring unexpected engine reply")
	}
}

// enterCurrent re-enters the position at the history cursor: informs the
// engine, redraws, drops any selector bound to another position, and starts
// (or resumes) action selection.
func (s *Session) enterCurrent() {
	position := s.Current()

	s.selector = nil
	s.options = nil
	if err := s.commander.SetPosition(position); err != nil {
		log.Error().Err(err).Msg("set_position failed")
	}

	board, err := game.Parse(position)
	if err != nil {
		// History only ever holds validated strings or engine echoes.
		log.Error().Err(err).Str("position", position).Msg("current position failed to parse")
	}
	s.presenter.Position(board, position)
	s.refreshSelection()
}

// refreshSelection consults the cache for the current position, requesting
// futures from the engine on a miss. The request is fire-and-forget; until
// the reply lands the presenter shows the awaiting state.
func (s *Session) refreshSelection() {
	position := s.Current()
	futures, ok := s.cache.Get(position)
	if !ok {
		if err := s.commander.NextMoves(position); err != nil {
			log.Error().Err(err).Msg("next_moves failed")
		}
		s.options = nil
		s.presenter.Choices(nil)
		return
	}
	if s.selector == nil || s.selector.Position() != position {
		s.selector = NewActionSelector(position, futures)
	}
	s.presentChoices()
}

func (s *Session) presentChoices() {
	s.options = s.selector.NextActions()
	s.presenter.Choices(s.options)
}

// thinkingLine formats a best_move reply the way the engine log displays it:
// the action glyphs, eval, timing, depth, and what triggered the report.
func thinkingLine(m *engine.BestMove) string {
	return fmt.Sprintf("%s (eval: %g) (%.2fs | depth %d) | %s",
		game.SequenceString(m.Meta.Actions), m.Meta.Score,
		m.Meta.ElapsedSeconds, m.Meta.CalculatedDepth, m.Trigger)
}
