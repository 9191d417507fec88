package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOvers(t *testing.T) {
	assert.Equal(t, "0.0", FormatOvers(0))
	assert.Equal(t, "0.5", FormatOvers(5))
	assert.Equal(t, "1.0", FormatOvers(6))
	assert.Equal(t, "2.2", FormatOvers(14))
	assert.Equal(t, "20.0", FormatOvers(120))
}

func TestStrikeRate(t *testing.T) {
	assert.Equal(t, "0.0", StrikeRate(0, 0))
	assert.Equal(t, "0.0", StrikeRate(10, 0))
	assert.Equal(t, "200.0", StrikeRate(50, 25))
	assert.Equal(t, "100.0", StrikeRate(13, 13))
	assert.Equal(t, "33.3", StrikeRate(1, 3))
}

func TestEconomyRate(t *testing.T) {
	assert.Equal(t, "0.00", EconomyRate(0, 0))
	assert.Equal(t, "0.00", EconomyRate(10, 0))
	assert.Equal(t, "12.00", EconomyRate(24, 12))
	assert.Equal(t, "6.00", EconomyRate(6, 6))
	assert.Equal(t, "4.50", EconomyRate(9, 12))
}

func TestRunRate(t *testing.T) {
	assert.Equal(t, "0.00", RunRate(0, 0))
	assert.Equal(t, "8.00", RunRate(48, 36))
	assert.Equal(t, "7.50", RunRate(45, 36))
}

func TestRequiredRunRate(t *testing.T) {
	rrr, ok := RequiredRunRate(121, 60, 20, 60)
	assert.True(t, ok)
	assert.Equal(t, "6.10", rrr)

	// Chase already won: needed clamps to zero.
	rrr, ok = RequiredRunRate(100, 110, 20, 60)
	assert.True(t, ok)
	assert.Equal(t, "0.00", rrr)

	// No balls left.
	_, ok = RequiredRunRate(121, 60, 10, 60)
	assert.False(t, ok)
}

func TestOverArithmetic(t *testing.T) {
	assert.Equal(t, 120, OversToBalls(20))

	assert.False(t, OverComplete(0))
	assert.False(t, OverComplete(5))
	assert.True(t, OverComplete(6))
	assert.True(t, OverComplete(12))
	assert.False(t, OverComplete(13))

	assert.Equal(t, 1, CurrentOver(0))
	assert.Equal(t, 1, CurrentOver(5))
	assert.Equal(t, 2, CurrentOver(6))

	assert.Equal(t, 6, BallsRemainingInOver(0))
	assert.Equal(t, 1, BallsRemainingInOver(5))
	assert.Equal(t, 6, BallsRemainingInOver(6))
}
