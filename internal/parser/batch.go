package parser

import (
	"strings"

	"github.com/lox/handhistory/internal/hand"
)

// Hands within one file are separated by four consecutive line breaks
// (three blank lines). Matched after CRLF normalization.
const batchDelimiter = "\n\n\n\n"

// Result is the outcome of parsing one fragment of a multi-hand blob:
// either a parsed hand or that fragment's error, never both. Index is the
// fragment's position among the blob's non-blank fragments.
type Result struct {
	Index int
	Hand  hand.History
	Err   error
}

// ParseBatch splits a multi-hand blob on the batch delimiter and parses
// each non-blank fragment independently, preserving input order. A
// fragment's failure never aborts its siblings. Fragments that parse to
// the zero-value sentinel (empty header region) are filtered out.
func (p *Parser) ParseBatch(blob string) []Result {
	fragments := strings.Split(strings.ReplaceAll(blob, "\r\n", "\n"), batchDelimiter)

	results := make([]Result, 0, len(fragments))
	index := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		h, err := p.ParseOne(fragment)
		if err == nil && h.IsZero() {
			index++
			continue
		}
		results = append(results, Result{Index: index, Hand: h, Err: err})
		index++
	}
	return results
}
