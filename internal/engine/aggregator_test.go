package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryDeltasLegalBoundary(t *testing.T) {
	bat, bowl := DeliveryDeltas(Delivery{Runs: 4})
	assert.Equal(t, 4, bat.Runs)
	assert.Equal(t, 1, bat.Balls)
	assert.Equal(t, 1, bat.Fours)
	assert.Equal(t, 0, bat.Sixes)
	assert.Nil(t, bat.Out)

	assert.Equal(t, 1, bowl.BallsBowled)
	assert.Equal(t, 4, bowl.RunsConceded)
	assert.Equal(t, 0, bowl.Wickets)
}

func TestDeliveryDeltasSix(t *testing.T) {
	bat, _ := DeliveryDeltas(Delivery{Runs: 6})
	assert.Equal(t, 1, bat.Sixes)
	assert.Equal(t, 0, bat.Fours)
}

func TestDeliveryDeltasWide(t *testing.T) {
	// A wide never counts as a ball faced and charges the bowler the extra.
	bat, bowl := DeliveryDeltas(Delivery{IsWide: true})
	assert.Equal(t, 0, bat.Balls)
	assert.Equal(t, 0, bat.Runs)
	assert.Equal(t, 0, bowl.BallsBowled)
	assert.Equal(t, 1, bowl.RunsConceded)
}

func TestDeliveryDeltasNoBallWithRuns(t *testing.T) {
	bat, bowl := DeliveryDeltas(Delivery{Runs: 4, IsNoBall: true})
	assert.Equal(t, 4, bat.Runs)
	assert.Equal(t, 0, bat.Balls)
	assert.Equal(t, 1, bat.Fours)
	assert.Equal(t, 0, bowl.BallsBowled)
	assert.Equal(t, 5, bowl.RunsConceded)
}

func TestDeliveryDeltasWicket(t *testing.T) {
	bat, bowl := DeliveryDeltas(Delivery{IsWicket: true})
	require.NotNil(t, bat.Out)
	assert.True(t, *bat.Out)
	assert.Equal(t, 1, bowl.Wickets)
	assert.Equal(t, 1, bowl.BallsBowled)
}

func TestBattingDeltaInverse(t *testing.T) {
	out := true
	d := BattingDelta{Runs: 4, Balls: 1, Fours: 1, Out: &out}
	inv := d.Inverse()
	assert.Equal(t, -4, inv.Runs)
	assert.Equal(t, -1, inv.Balls)
	assert.Equal(t, -1, inv.Fours)
	require.NotNil(t, inv.Out)
	assert.False(t, *inv.Out)

	// No dismissal, no flag change either way.
	inv = BattingDelta{Runs: 2, Balls: 1}.Inverse()
	assert.Nil(t, inv.Out)
}

func TestBowlingDeltaInverse(t *testing.T) {
	inv := BowlingDelta{BallsBowled: 1, RunsConceded: 5, Wickets: 1}.Inverse()
	assert.Equal(t, -1, inv.BallsBowled)
	assert.Equal(t, -5, inv.RunsConceded)
	assert.Equal(t, -1, inv.Wickets)
}
