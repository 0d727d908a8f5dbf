package hand

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	h := History{
		Number: 93405882771,
		Players: []Player{
			{Seat: 1, Nickname: "VakaLuks", Stack: decimal.RequireFromString("26.87"), Currency: '$'},
			{Seat: 5, Nickname: "RicsiTheKid", Stack: decimal.RequireFromString("25"), Currency: '$'},
			{Seat: 6, Nickname: "angrypaca", Stack: decimal.RequireFromString("26.89"), Currency: '$',
				HoleCards: []Card{{Rank: '6', Suit: 'd'}, {Rank: 'A', Suit: 's'}}},
		},
	}

	want := "Hand #93405882771\n" +
		"Seat 1: VakaLuks ($26.87 in chips)\n" +
		"Seat 5: RicsiTheKid ($25.00 in chips)\n" +
		"Seat 6: angrypaca ($26.89 in chips)\n" +
		"*** HOLE CARDS ***\n" +
		"Dealt to angrypaca [6d As]\n"

	assert.Equal(t, want, h.Render())
}

func TestRenderOmitsHoleCardsWhenUnknown(t *testing.T) {
	h := History{
		Number: 42,
		Players: []Player{
			{Seat: 2, Nickname: "BigBlindBets", Stack: decimal.RequireFromString("29.73"), Currency: '$'},
		},
	}

	assert.NotContains(t, h.Render(), "HOLE CARDS")
	assert.NotContains(t, h.Render(), "Dealt to")
}

func TestRenderEuroCurrency(t *testing.T) {
	h := History{
		Number: 7,
		Players: []Player{
			{Seat: 3, Nickname: "Jamol121", Stack: decimal.RequireFromString("17.66"), Currency: '€'},
		},
	}

	assert.Contains(t, h.Render(), "Seat 3: Jamol121 (€17.66 in chips)")
}
