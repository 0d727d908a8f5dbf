// Package parser turns raw PokerStars hand-history text into structured
// hand records. A hand's text is split into an implicit header region plus
// marker-delimited sections; the header yields the hand number and seat
// roster, the hole-cards section yields the hero's revealed cards. All
// other sections are recognized but deliberately inert.
package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lox/handhistory/internal/hand"
)

// Section marker lines as they appear in the source format. Markers that
// carry board cards on the same line (e.g. "*** FLOP *** [5s Qs 3c]") fall
// through to the default dispatch arm, which is equally a no-op.
const (
	sectionHoleCards = "*** HOLE CARDS ***"
	sectionFlop      = "*** FLOP ***"
	sectionTurn      = "*** TURN ***"
	sectionRiver     = "*** RIVER ***"
	sectionShowDown  = "*** SHOW DOWN ***"
	sectionSummary   = "*** SUMMARY ***"

	markerPrefix = "***"
)

// Parser parses hand-history text. It holds no mutable state and is safe
// for concurrent use.
type Parser struct {
	logger zerolog.Logger
}

// New creates a parser that reports diagnostics on the given logger. Pass
// zerolog.Nop() to run silently.
func New(logger zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseOne parses a single hand's raw text into a History. Any structural
// failure aborts the whole hand; no partial record is returned.
func (p *Parser) ParseOne(text string) (hand.History, error) {
	lines := splitLines(text)

	headerEnd := 0
	for headerEnd < len(lines) && !isMarkerLine(lines[headerEnd]) {
		headerEnd++
	}

	h, err := p.parseHeader(hand.History{}, strings.Join(lines[:headerEnd], "\n"))
	if err != nil {
		return hand.History{}, err
	}

	rest := lines[headerEnd:]
	for len(rest) > 0 {
		name := rest[0]
		rest = rest[1:]

		bodyEnd := 0
		for bodyEnd < len(rest) && !isMarkerLine(rest[bodyEnd]) {
			bodyEnd++
		}
		h, err = p.parseSection(h, name, strings.Join(rest[:bodyEnd], "\n"))
		if err != nil {
			return hand.History{}, err
		}
		rest = rest[bodyEnd:]
	}

	return h, nil
}

// parseSection routes one named section to its handler. The recognized
// names form a closed set; only the hole-cards section currently carries a
// handler, the remaining arms are extension points.
func (p *Parser) parseSection(h hand.History, name, body string) (hand.History, error) {
	switch strings.TrimSpace(name) {
	case sectionHoleCards:
		return p.parseHoleCards(h, body)
	case sectionFlop, sectionTurn, sectionRiver, sectionShowDown, sectionSummary:
		return h, nil
	default:
		return h, nil
	}
}

// splitLines splits hand text into lines. The source format is CRLF but
// re-rendered hands use bare LF, so both are accepted.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func isMarkerLine(line string) bool {
	return strings.HasPrefix(line, markerPrefix)
}
