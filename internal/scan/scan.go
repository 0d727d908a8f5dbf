// Package scan locates and converts numeric runs embedded in hand-history
// text. The source format has no consistent delimiter around numbers; they
// sit between punctuation and currency glyphs, so callers anchor on a known
// offset and scan the maximal digit (or decimal) run from there.
package scan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedNumber indicates that no numeric run starts at the given
// offset, or that the located run failed strict conversion.
var ErrMalformedNumber = errors.New("malformed number")

// Int scans the digit run starting at start and converts it to an int.
func Int(text string, start int) (int, error) {
	end, err := digitRunEnd(text, start)
	if err != nil {
		return 0, err
	}
	return IntRange(text, start, end)
}

// IntRange converts text[start:end] to an int without scanning. Used when
// the caller has already located the field boundaries by other means.
func IntRange(text string, start, end int) (int, error) {
	v, err := strconv.Atoi(text[start:end])
	if err != nil {
		return 0, fmt.Errorf("convert %q to int: %w", text[start:end], ErrMalformedNumber)
	}
	return v, nil
}

// Long scans the digit run starting at start and converts it to an int64.
func Long(text string, start int) (int64, error) {
	end, err := digitRunEnd(text, start)
	if err != nil {
		return 0, err
	}
	return LongRange(text, start, end)
}

// LongRange converts text[start:end] to an int64 without scanning.
func LongRange(text string, start, end int) (int64, error) {
	v, err := strconv.ParseInt(text[start:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("convert %q to int64: %w", text[start:end], ErrMalformedNumber)
	}
	return v, nil
}

// Decimal scans the decimal run starting at start and converts it. The run
// is digits plus at most one '.', located by its first occurrence at or
// after start; a second '.' terminates the run.
func Decimal(text string, start int) (decimal.Decimal, error) {
	end, err := decimalRunEnd(text, start)
	if err != nil {
		return decimal.Zero, err
	}
	return DecimalRange(text, start, end)
}

// DecimalRange converts text[start:end] to a decimal without scanning.
func DecimalRange(text string, start, end int) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(text[start:end])
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert %q to decimal: %w", text[start:end], ErrMalformedNumber)
	}
	return v, nil
}

func digitRunEnd(text string, start int) (int, error) {
	if start >= len(text) || !isDigit(text[start]) {
		return 0, fmt.Errorf("no digit at offset %d: %w", start, ErrMalformedNumber)
	}
	end := start + 1
	for end < len(text) && isDigit(text[end]) {
		end++
	}
	return end, nil
}

func decimalRunEnd(text string, start int) (int, error) {
	if start >= len(text) || !isDigit(text[start]) {
		return 0, fmt.Errorf("no digit at offset %d: %w", start, ErrMalformedNumber)
	}
	// Only the first '.' at or after start may stay inside the run.
	point := strings.IndexByte(text[start:], '.')
	if point >= 0 {
		point += start
	}
	end := start + 1
	for end < len(text) && (isDigit(text[end]) || end == point) {
		end++
	}
	return end, nil
}

// isDigit intentionally matches ASCII digits only; Unicode digit classes
// would pass the scan but fail strict conversion.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
