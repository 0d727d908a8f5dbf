// Package hand holds the structured records produced by the hand-history
// parser: cards, seated players and per-hand results.
package hand

// History represents one parsed hand: its identifier and the roster of
// seated players in header order.
type History struct {
	Number  int64
	Players []Player
}

// WithNumber returns a copy of the history carrying the given hand number.
func (h History) WithNumber(number int64) History {
	h.Number = number
	h.Players = append([]Player(nil), h.Players...)
	return h
}

// WithPlayers returns a copy of the history carrying the given roster.
func (h History) WithPlayers(players []Player) History {
	h.Players = players
	return h
}

// IsZero reports whether nothing was parsed into the history. A hand whose
// header region was empty stays at the zero value; batch output filters
// these out rather than treating them as failures.
func (h History) IsZero() bool {
	return h.Number == 0 && len(h.Players) == 0
}
