package hand

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// stackFormat renders stacks thousands-separated with two decimals, the way
// the poker room prints them.
const stackFormat = "#,###.##"

// Render returns the canonical human-readable form of the hand: the hand
// number, one seat line per player, and a hole-cards section when any
// player's cards are known. The output re-parses to an equivalent history.
func (h History) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hand #%d\n", h.Number)
	for _, p := range h.Players {
		fmt.Fprintf(&b, "Seat %d: %s (%c%s in chips)\n",
			p.Seat, p.Nickname, p.Currency, humanize.FormatFloat(stackFormat, p.Stack.InexactFloat64()))
	}
	if hero, ok := h.heroPlayer(); ok {
		b.WriteString("*** HOLE CARDS ***\n")
		fmt.Fprintf(&b, "Dealt to %s [%s]\n", hero.Nickname, renderCards(hero.HoleCards))
	}
	return b.String()
}

// String implements fmt.Stringer via the canonical render.
func (h History) String() string {
	return h.Render()
}

// heroPlayer returns the first roster entry with known hole cards. The
// source format reveals cards for at most one player per hand.
func (h History) heroPlayer() (Player, bool) {
	for _, p := range h.Players {
		if len(p.HoleCards) > 0 {
			return p, true
		}
	}
	return Player{}, false
}

func renderCards(cards []Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
