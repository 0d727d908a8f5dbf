package hand

import (
	"github.com/shopspring/decimal"
)

// HeroSeat is the sentinel seat number for the transient player built from
// a "Dealt to" line before its cards are merged into the roster.
const HeroSeat = -1

// Player describes one seated player as declared in the hand header.
type Player struct {
	Seat      int
	Nickname  string
	Stack     decimal.Decimal
	Currency  rune
	HoleCards []Card
}

// Key identifies a player for the hero-card merge. The source format ties
// the "Dealt to" line to the roster by nickname alone, so the key carries
// nothing else; seat, stack and currency never participate in the match.
// Nickname collisions between distinct seats are a known format assumption
// and are indistinguishable here.
type Key struct {
	Nickname string
}

// Key returns the merge identity of the player.
func (p Player) Key() Key {
	return Key{Nickname: p.Nickname}
}

// WithHoleCards returns a copy of the player carrying the given cards.
// Players are never mutated in place.
func (p Player) WithHoleCards(cards []Card) Player {
	p.HoleCards = append([]Card(nil), cards...)
	return p
}
