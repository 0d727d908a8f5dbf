package hand

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlayerKeyIgnoresSeatAndStack(t *testing.T) {
	a := Player{Seat: 1, Nickname: "VakaLuks", Stack: decimal.RequireFromString("26.87"), Currency: '$'}
	b := Player{Seat: HeroSeat, Nickname: "VakaLuks", Stack: decimal.Zero, Currency: '$'}
	c := Player{Seat: 1, Nickname: "BigBlindBets", Stack: decimal.RequireFromString("26.87"), Currency: '$'}

	assert.Equal(t, a.Key(), b.Key(), "same nickname must match regardless of seat and stack")
	assert.NotEqual(t, a.Key(), c.Key(), "different nicknames must not match")
}

func TestWithHoleCardsCopies(t *testing.T) {
	p := Player{Seat: 6, Nickname: "angrypaca", Stack: decimal.RequireFromString("26.89"), Currency: '$'}
	cards := []Card{{Rank: '6', Suit: 'd'}, {Rank: 'A', Suit: 's'}}

	updated := p.WithHoleCards(cards)

	assert.Empty(t, p.HoleCards, "original player must not be mutated")
	assert.Equal(t, cards, updated.HoleCards)
	assert.Equal(t, p.Seat, updated.Seat)
	assert.Equal(t, p.Nickname, updated.Nickname)
	assert.True(t, p.Stack.Equal(updated.Stack))

	// The copy must not alias the caller's slice.
	cards[0] = Card{Rank: 'K', Suit: 'h'}
	assert.Equal(t, Card{Rank: '6', Suit: 'd'}, updated.HoleCards[0])
}

func TestParseCard(t *testing.T) {
	card, err := ParseCard("As")
	if err != nil {
		t.Fatalf("ParseCard() error = %v", err)
	}
	assert.Equal(t, Card{Rank: 'A', Suit: 's'}, card)
	assert.Equal(t, "As", card.String())

	for _, bad := range []string{"", "A", "Asd"} {
		if _, err := ParseCard(bad); err == nil {
			t.Errorf("ParseCard(%q) expected error", bad)
		}
	}
}

func TestHistoryCopyOnWrite(t *testing.T) {
	base := History{}
	players := []Player{{Seat: 1, Nickname: "VakaLuks", Currency: '$'}}

	withNumber := base.WithNumber(93405882771)
	withPlayers := withNumber.WithPlayers(players)

	assert.True(t, base.IsZero())
	assert.False(t, withPlayers.IsZero())
	assert.EqualValues(t, 93405882771, withPlayers.Number)
	assert.Len(t, withPlayers.Players, 1)
	assert.Empty(t, withNumber.Players, "WithPlayers must not touch its receiver")
}
