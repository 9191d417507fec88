package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gullyscore/api/internal/engine"
)

func TestDefaultMatchIsSetupState(t *testing.T) {
	m := NewDefaultMatch()
	assert.Equal(t, CurrentMatchID, m.ID)
	assert.Equal(t, string(engine.StatusSetup), m.Status)
	assert.Equal(t, 1, m.Innings)
	assert.NotNil(t, m.Deliveries)
	assert.Nil(t, m.FirstInnings.Score)
}

func TestEngineStateRoundTrip(t *testing.T) {
	striker := uint(3)
	bowler := uint(7)
	overs := 20
	state := engine.State{
		Name:          "Final",
		OversLimit:    &overs,
		BattingTeamID: "team-b",
		BowlingTeamID: "team-a",
		StrikerID:     &striker,
		BowlerID:      &bowler,
		TotalRuns:     87,
		Wickets:       3,
		TotalBalls:    58,
		Extras:        engine.Extras{Wides: 4, NoBalls: 1},
		Deliveries:    []engine.Delivery{{ID: "b1", Runs: 4, BatsmanID: 3, BowlerID: 7}},
		Innings:       2,
		FirstInnings: &engine.InningsScore{
			Runs: 110, Wickets: 6, Balls: 120, BattingTeamID: "team-a",
		},
		FirstInningsBattingTeamID: "team-a",
		Status:                    engine.StatusLive,
	}

	m := &Match{ID: CurrentMatchID}
	m.ApplyEngineState(state)
	back := m.EngineState()

	assert.Equal(t, state, back)
}

func TestInningsSnapshotScanNull(t *testing.T) {
	var s InningsSnapshot
	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s.Score)

	v, err := s.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestInningsSnapshotScanDocument(t *testing.T) {
	var s InningsSnapshot
	require.NoError(t, s.Scan([]byte(`{"runs":110,"wickets":6,"balls":120,"battingTeamId":"team-a"}`)))
	require.NotNil(t, s.Score)
	assert.Equal(t, 110, s.Score.Runs)
	assert.Equal(t, "team-a", s.Score.BattingTeamID)
}

func TestDeliveryLedgerScanEmpty(t *testing.T) {
	var l DeliveryLedger
	require.NoError(t, l.Scan(nil))
	assert.NotNil(t, l)
	assert.Len(t, l, 0)
}
