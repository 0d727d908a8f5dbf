package parser

import (
	"errors"

	"github.com/lox/handhistory/internal/scan"
)

// Error kinds surfaced by the parser. Concrete errors wrap one of these
// sentinels with context; match with errors.Is.
var (
	// ErrAnchorNotFound indicates a required literal marker ("Hand #",
	// "[", "]") was absent from the scanned text.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrMalformedNumber indicates a numeric run failed to scan or convert.
	ErrMalformedNumber = scan.ErrMalformedNumber

	// ErrStructure indicates a line does not match the expected seat-line
	// or dealt-to-line shape.
	ErrStructure = errors.New("line structure violation")

	// ErrCardinality indicates a section held an unexpected count of a
	// uniquely-expected line.
	ErrCardinality = errors.New("section cardinality violation")
)
