package hand

import "fmt"

// Card represents a playing card in two-character rank+suit notation as it
// appears in hand-history text (e.g. "As", "6d").
type Card struct {
	Rank byte
	Suit byte
}

// ParseCard converts a two-character token into a Card.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("card token %q must be exactly two characters", token)
	}
	return Card{Rank: token[0], Suit: token[1]}, nil
}

// String returns the card in the source notation.
func (c Card) String() string {
	return string([]byte{c.Rank, c.Suit})
}
