package lineclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func joinAll(lines []string) []string {
	var j Joiner
	for _, l := range lines {
		j.Feed(l)
	}
	return j.Finish()
}

func TestJoinerWrappedItemLine(t *testing.T) {
	got := joinAll([]string{
		"1234567890123 12345 ORGANIC",
		"BANANAS 2 1.99",
	})
	assert.Equal(t, []string{"1234567890123 12345 ORGANIC BANANAS 2 1.99"}, got)
}

func TestJoinerNewUPCFlushesBuffer(t *testing.T) {
	got := joinAll([]string{
		"1234567890123 12345 ORGANIC",
		"9876543210987 54321 FLOUR 32.15",
	})
	assert.Equal(t, []string{
		"1234567890123 12345 ORGANIC",
		"9876543210987 54321 FLOUR 32.15",
	}, got)
}

func TestJoinerMultipleContinuations(t *testing.T) {
	got := joinAll([]string{
		"1234567890123 12345 FROZEN",
		"CHICKEN LEG",
		"QUARTERS 40LB 52.80",
	})
	assert.Equal(t, []string{"1234567890123 12345 FROZEN CHICKEN LEG QUARTERS 40LB 52.80"}, got)
}

func TestJoinerPriceLineAfterCompleteItemStandsAlone(t *testing.T) {
	got := joinAll([]string{
		"1234567890123 12345 BANANAS 2 1.99",
		"BULK FEE 0.50",
	})
	assert.Equal(t, []string{
		"1234567890123 12345 BANANAS 2 1.99",
		"BULK FEE 0.50",
	}, got)
}

func TestJoinerColonPriceCountsAsTerminal(t *testing.T) {
	// the price-end check tolerates the misread colon form
	got := joinAll([]string{
		"1234567890123 12345 NOODLES",
		"5PK 7:99",
	})
	assert.Equal(t, []string{"1234567890123 12345 NOODLES 5PK 7:99"}, got)
}

func TestJoinerFinalBufferFlushed(t *testing.T) {
	got := joinAll([]string{"1234567890123 12345 OPEN ENDED"})
	assert.Equal(t, []string{"1234567890123 12345 OPEN ENDED"}, got)
}

func TestJoinerEmptyInput(t *testing.T) {
	assert.Empty(t, joinAll(nil))
	assert.Empty(t, joinAll([]string{""}))
}
