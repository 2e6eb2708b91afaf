package session

import "santorini/game"

// MoveCache maps a position string to the engine's enumerated futures for
// that position. Entries are write-once and never evicted; the cache lives as
// long as the process. It is not safe for concurrent use - all access happens
// on the session goroutine.
type MoveCache struct {
	futures map[string][]game.ActionSequence
}

func NewMoveCache() *MoveCache {
	return &MoveCache{futures: make(map[string][]game.ActionSequence)}
}

// Get returns the cached futures for a position, or ok=false on a miss. A
// miss never fabricates data; it is the caller's cue to ask the engine.
func (c *MoveCache) Get(position string) ([]game.ActionSequence, bool) {
	futures, ok := c.futures[position]
	return futures, ok
}

// Put stores futures under the exact position string the engine echoed, even
// when that position is no longer the one on display. The first receipt wins;
// Put reports false for a duplicate and keeps the original entry.
func (c *MoveCache) Put(position string, futures []game.ActionSequence) bool {
	if _, ok := c.futures[position]; ok {
		return false
	}
	c.futures[position] = futures
	return true
}
