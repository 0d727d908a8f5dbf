package parser

import (
	"fmt"
	"strings"

	"github.com/lox/handhistory/internal/hand"
)

const (
	dealtToPrefix = "Dealt to"

	// "Dealt to <nickname> [...]": the nickname is the third token.
	heroNicknameIndex = 2
)

// parseHoleCards extracts the hero's revealed cards from the hole-cards
// section body and merges them into the roster. The format guarantees at
// most one hero per hand; any other count of "Dealt to" lines means the
// splitter and the text have desynchronized and must not be papered over.
func (p *Parser) parseHoleCards(h hand.History, body string) (hand.History, error) {
	var dealtLines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), dealtToPrefix) {
			dealtLines = append(dealtLines, line)
		}
	}
	if len(dealtLines) != 1 {
		return hand.History{}, fmt.Errorf("expected exactly one %q line, found %d: %w",
			dealtToPrefix, len(dealtLines), ErrCardinality)
	}

	hero, err := parseDealtToLine(dealtLines[0])
	if err != nil {
		return hand.History{}, err
	}
	p.logger.Debug().Str("hero", hero.Nickname).Msg("parsing hole cards section")

	merged, matched := mergeHeroCards(h.Players, hero)
	if !matched {
		// Header and hole-cards sections disagree on the nickname; the
		// cards are dropped rather than failing the hand.
		p.logger.Warn().Str("hero", hero.Nickname).
			Msg("hero nickname not in roster, dropping hole cards")
	}
	return h.WithPlayers(merged), nil
}

// parseDealtToLine builds the transient hero player from a "Dealt to" line.
// The returned player carries the sentinel seat and a zero stack; only its
// key and cards survive the merge.
func parseDealtToLine(line string) (hand.Player, error) {
	fields := strings.Fields(line)
	if len(fields) <= heroNicknameIndex {
		return hand.Player{}, fmt.Errorf("dealt-to line %q has no nickname token: %w", line, ErrStructure)
	}
	nickname := fields[heroNicknameIndex]

	open := strings.IndexByte(line, '[')
	closing := strings.IndexByte(line, ']')
	if open == -1 || closing == -1 || closing < open {
		return hand.Player{}, fmt.Errorf("hero cards brackets missing in %q: %w", line, ErrAnchorNotFound)
	}

	tokens := strings.Split(line[open+1:closing], " ")
	cards := make([]hand.Card, 0, len(tokens))
	for _, token := range tokens {
		card, err := hand.ParseCard(token)
		if err != nil {
			return hand.Player{}, fmt.Errorf("hero cards in %q: %v: %w", line, err, ErrStructure)
		}
		cards = append(cards, card)
	}

	return hand.Player{
		Seat:      hand.HeroSeat,
		Nickname:  nickname,
		Currency:  '$',
		HoleCards: cards,
	}, nil
}

// mergeHeroCards copies the roster, attaching the hero's cards to the entry
// matching the hero's key. Matching is by nickname alone.
func mergeHeroCards(players []hand.Player, hero hand.Player) ([]hand.Player, bool) {
	merged := make([]hand.Player, len(players))
	matched := false
	for i, player := range players {
		if player.Key() == hero.Key() {
			merged[i] = player.WithHoleCards(hero.HoleCards)
			matched = true
			continue
		}
		merged[i] = player
	}
	return merged, matched
}
