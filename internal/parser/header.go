package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lox/handhistory/internal/hand"
	"github.com/lox/handhistory/internal/scan"
)

const (
	handNumberAnchor = "Hand #"
	seatLinePrefix   = "Seat"
)

// parseHeader extracts the hand number and seat roster from the implicit
// header region. An empty region leaves the record unchanged; truncated
// input produces the zero-value sentinel rather than an error.
func (p *Parser) parseHeader(h hand.History, region string) (hand.History, error) {
	if region == "" {
		return h, nil
	}

	number, err := parseHandNumber(region)
	if err != nil {
		return hand.History{}, err
	}
	p.logger.Debug().Int64("hand_number", number).Msg("parsing header section")

	var players []hand.Player
	for _, line := range strings.Split(region, "\n") {
		if !strings.HasPrefix(line, seatLinePrefix) {
			continue
		}
		player, err := parseSeatLine(line)
		if err != nil {
			return hand.History{}, err
		}
		players = append(players, player)
	}

	return h.WithNumber(number).WithPlayers(players), nil
}

func parseHandNumber(region string) (int64, error) {
	idx := strings.Index(region, handNumberAnchor)
	if idx == -1 {
		return 0, fmt.Errorf("%q not found in header region: %w", handNumberAnchor, ErrAnchorNotFound)
	}
	number, err := scan.Long(region, idx+len(handNumberAnchor))
	if err != nil {
		return 0, fmt.Errorf("hand number: %w", err)
	}
	return number, nil
}

// parseSeatLine parses one roster declaration of the shape
//
//	Seat <n>: <nickname> (<currency><amount> in chips) ...
//
// by anchor search rather than token counting: nicknames may contain spaces
// and parentheses, so the stack opener is the first '(' immediately followed
// by a currency glyph.
func parseSeatLine(line string) (hand.Player, error) {
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return hand.Player{}, fmt.Errorf("seat line %q has no ':': %w", line, ErrStructure)
	}
	open := stackOpenIndex(line)
	if open == -1 {
		return hand.Player{}, fmt.Errorf("seat line %q has no currency-opening '(': %w", line, ErrStructure)
	}

	seatTokens := strings.Split(line[:colon], " ")
	if len(seatTokens) < 2 {
		return hand.Player{}, fmt.Errorf("seat line %q has no seat number token: %w", line, ErrStructure)
	}
	seat, err := scan.Int(seatTokens[1], 0)
	if err != nil {
		return hand.Player{}, fmt.Errorf("seat number in %q: %w", line, err)
	}

	currency, width := utf8.DecodeRuneInString(line[open+1:])
	stack, err := scan.Decimal(line, open+1+width)
	if err != nil {
		return hand.Player{}, fmt.Errorf("stack in %q: %w", line, err)
	}

	return hand.Player{
		Seat:     seat,
		Nickname: strings.TrimSpace(line[colon+1 : open]),
		Stack:    stack,
		Currency: currency,
	}, nil
}

// stackOpenIndex finds the '(' that opens the stack field: the first one
// immediately followed by a recognized currency glyph. Parentheticals like
// "(button)" or parentheses inside nicknames are skipped.
func stackOpenIndex(line string) int {
	for i := strings.IndexByte(line, '('); i != -1; {
		r, _ := utf8.DecodeRuneInString(line[i+1:])
		if r == '$' || r == '€' {
			return i
		}
		next := strings.IndexByte(line[i+1:], '(')
		if next == -1 {
			return -1
		}
		i += 1 + next
	}
	return -1
}
