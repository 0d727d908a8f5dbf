// Package phh exports parsed hand histories in a PHH-style TOML form, for
// downstream tooling that consumes structured hands rather than the raw
// poker room text.
package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/handhistory/internal/hand"
)

// Hand is the TOML-serializable form of one parsed hand. Stacks stay
// strings to keep their exact decimal representation.
type Hand struct {
	HandID         string   `toml:"hand"`
	Seats          []int    `toml:"seats"`
	Players        []string `toml:"players"`
	StartingStacks []string `toml:"starting_stacks"`
	Currency       string   `toml:"currency,omitempty"`
	Actions        []string `toml:"actions,omitempty"`
}

// FromHistory converts a parsed hand into its export form. When the hero's
// hole cards are known they are emitted as a PHH deal action
// ("d dh p<position> <cards>").
func FromHistory(h hand.History) Hand {
	out := Hand{
		HandID:         fmt.Sprintf("%d", h.Number),
		Seats:          make([]int, len(h.Players)),
		Players:        make([]string, len(h.Players)),
		StartingStacks: make([]string, len(h.Players)),
	}
	for i, p := range h.Players {
		out.Seats[i] = p.Seat
		out.Players[i] = p.Nickname
		out.StartingStacks[i] = p.Stack.String()
		if out.Currency == "" && p.Currency != 0 {
			out.Currency = string(p.Currency)
		}
		if len(p.HoleCards) > 0 {
			out.Actions = append(out.Actions, dealAction(i+1, p.HoleCards))
		}
	}
	return out
}

// Encode writes one hand to the writer as TOML.
func Encode(w io.Writer, h Hand) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("phh: encode hand %s: %w", h.HandID, err)
	}
	return nil
}

// EncodeAll writes the hands blank-line separated, in order.
func EncodeAll(w io.Writer, hands []hand.History) error {
	for i, h := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := Encode(w, FromHistory(h)); err != nil {
			return err
		}
	}
	return nil
}

func dealAction(position int, cards []hand.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "d dh p%d ", position)
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
