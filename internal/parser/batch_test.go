package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crlfDelimiter = "\r\n\r\n\r\n\r\n"

func miniHand(number int64, nickname string) string {
	return fmt.Sprintf("PokerStars Hand #%d:  Hold'em No Limit\r\nSeat 1: %s ($10 in chips)", number, nickname)
}

func TestParseBatchPreservesOrder(t *testing.T) {
	blob := strings.Join([]string{
		miniHand(101, "alice"),
		miniHand(102, "bob"),
		miniHand(103, "carol"),
	}, crlfDelimiter)

	results := newTestParser().ParseBatch(blob)
	require.Len(t, results, 3)
	for i, want := range []int64{101, 102, 103} {
		assert.NoError(t, results[i].Err)
		assert.Equal(t, i, results[i].Index)
		assert.Equal(t, want, results[i].Hand.Number)
	}
}

func TestParseBatchSkipsBlankFragments(t *testing.T) {
	blob := miniHand(101, "alice") + crlfDelimiter + "   \r\n  " + crlfDelimiter + miniHand(102, "bob")

	results := newTestParser().ParseBatch(blob)
	require.Len(t, results, 2)
	assert.EqualValues(t, 101, results[0].Hand.Number)
	assert.EqualValues(t, 102, results[1].Hand.Number)
}

func TestParseBatchIsolatesFragmentFailures(t *testing.T) {
	blob := strings.Join([]string{
		miniHand(101, "alice"),
		"PokerStars tournament summary without a hand anchor\r\nSeat 1: x ($1 in chips)",
		miniHand(103, "carol"),
	}, crlfDelimiter)

	results := newTestParser().ParseBatch(blob)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrAnchorNotFound)
	assert.NoError(t, results[2].Err)
	assert.EqualValues(t, 103, results[2].Hand.Number)
}

func TestParseBatchFiltersSentinelHands(t *testing.T) {
	// A fragment that opens directly at a section marker parses to the
	// zero-value sentinel and is filtered, not reported as a failure.
	blob := miniHand(101, "alice") + crlfDelimiter +
		"*** SUMMARY ***\r\nTotal pot $0.60" + crlfDelimiter +
		miniHand(103, "carol")

	results := newTestParser().ParseBatch(blob)
	require.Len(t, results, 2)
	assert.EqualValues(t, 101, results[0].Hand.Number)
	assert.EqualValues(t, 103, results[1].Hand.Number)
	assert.Equal(t, 2, results[1].Index, "filtered fragment still consumes an index")
}

func TestParseBatchMatchesParseOne(t *testing.T) {
	p := newTestParser()
	fragments := []string{miniHand(101, "alice"), sampleHand, miniHand(103, "carol")}

	results := p.ParseBatch(strings.Join(fragments, crlfDelimiter))
	require.Len(t, results, len(fragments))
	for i, fragment := range fragments {
		want, err := p.ParseOne(fragment)
		require.NoError(t, err)
		assert.Equal(t, want, results[i].Hand)
	}
}

func TestParseBatchEmptyBlob(t *testing.T) {
	assert.Empty(t, newTestParser().ParseBatch(""))
	assert.Empty(t, newTestParser().ParseBatch(crlfDelimiter))
}
