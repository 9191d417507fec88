package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func newLiveState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	require.NoError(t, s.Configure(Config{
		Name:            "Sunday game",
		OversLimit:      intPtr(2),
		BattingTeamID:   "team-a",
		BowlingTeamID:   "team-b",
		BattingTeamSize: 5,
		BowlingTeamSize: 5,
	}))
	require.NoError(t, s.Start())
	require.NoError(t, s.SelectBatsman(uintPtr(1), 0))
	require.NoError(t, s.SelectBatsman(uintPtr(2), 1))
	require.NoError(t, s.SelectBowler(10))
	return &s
}

func TestConfigureValidation(t *testing.T) {
	s := NewState()

	var ve *ValidationError
	err := s.Configure(Config{BattingTeamID: "team-a", BowlingTeamID: "team-a", BattingTeamSize: 5, BowlingTeamSize: 5})
	require.ErrorAs(t, err, &ve)

	err = s.Configure(Config{BattingTeamID: "", BowlingTeamID: "team-b", BattingTeamSize: 5, BowlingTeamSize: 5})
	require.ErrorAs(t, err, &ve)

	err = s.Configure(Config{BattingTeamID: "team-a", BowlingTeamID: "team-b", BattingTeamSize: 0, BowlingTeamSize: 5})
	require.ErrorAs(t, err, &ve)

	err = s.Configure(Config{OversLimit: intPtr(0), BattingTeamID: "team-a", BowlingTeamID: "team-b", BattingTeamSize: 5, BowlingTeamSize: 5})
	require.ErrorAs(t, err, &ve)
}

func TestConfigureOnlyInSetup(t *testing.T) {
	s := newLiveState(t)
	var ise *IllegalStateError
	err := s.Configure(Config{BattingTeamID: "team-a", BowlingTeamID: "team-b", BattingTeamSize: 5, BowlingTeamSize: 5})
	require.ErrorAs(t, err, &ise)
}

func TestStartRequiresConfiguration(t *testing.T) {
	s := NewState()
	var ve *ValidationError
	require.ErrorAs(t, s.Start(), &ve)
}

func TestApplyDeliveryRequiresSelections(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Configure(Config{
		BattingTeamID: "team-a", BowlingTeamID: "team-b",
		BattingTeamSize: 5, BowlingTeamSize: 5,
	}))
	require.NoError(t, s.Start())

	var mpe *MissingParticipantsError
	_, err := s.ApplyDelivery(Input{Runs: 1})
	require.ErrorAs(t, err, &mpe)
	assert.ElementsMatch(t, []string{"striker", "bowler"}, mpe.Missing)
}

func TestApplyDeliveryOnlyWhileLive(t *testing.T) {
	s := NewState()
	var ise *IllegalStateError
	_, err := s.ApplyDelivery(Input{Runs: 1})
	require.ErrorAs(t, err, &ise)
}

func TestLegalDelivery(t *testing.T) {
	s := newLiveState(t)
	out, err := s.ApplyDelivery(Input{Runs: 4})
	require.NoError(t, err)

	assert.Equal(t, 4, s.TotalRuns)
	assert.Equal(t, 1, s.TotalBalls)
	assert.Equal(t, 0, s.Wickets)
	assert.Len(t, s.Deliveries, 1)
	assert.NotEmpty(t, out.Ball.ID)
	assert.Equal(t, uint(1), out.Ball.BatsmanID)
	assert.Equal(t, uint(10), out.Ball.BowlerID)
	assert.False(t, out.OverCompleted)
	assert.Empty(t, out.Pending)
	// Even runs keep the striker on strike.
	assert.Equal(t, uint(1), *s.StrikerID)
}

func TestWideAddsRunWithoutBall(t *testing.T) {
	s := newLiveState(t)
	_, err := s.ApplyDelivery(Input{IsWide: true})
	require.NoError(t, err)

	assert.Equal(t, 1, s.TotalRuns)
	assert.Equal(t, 0, s.TotalBalls)
	assert.Equal(t, 1, s.Extras.Wides)
	assert.Len(t, s.Deliveries, 1)
}

func TestNoBallStackedWithBatsmanRuns(t *testing.T) {
	s := newLiveState(t)
	_, err := s.ApplyDelivery(Input{Runs: 4, IsNoBall: true})
	require.NoError(t, err)

	assert.Equal(t, 5, s.TotalRuns)
	assert.Equal(t, 0, s.TotalBalls)
	assert.Equal(t, 1, s.Extras.NoBalls)
}

func TestOddRunsRotateStrike(t *testing.T) {
	s := newLiveState(t)
	_, err := s.ApplyDelivery(Input{Runs: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(2), *s.StrikerID)
	assert.Equal(t, uint(1), *s.NonStrikerID)

	// Odd runs rotate on extras too.
	_, err = s.ApplyDelivery(Input{Runs: 3, IsNoBall: true})
	require.NoError(t, err)
	assert.Equal(t, uint(1), *s.StrikerID)
}

func TestWicketClearsStrikerAndRequestsReplacement(t *testing.T) {
	s := newLiveState(t)
	out, err := s.ApplyDelivery(Input{IsWicket: true})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Wickets)
	assert.Nil(t, s.StrikerID)
	require.Len(t, out.Pending, 1)
	assert.Equal(t, PendingSelectBatsman, out.Pending[0].Kind)
	assert.Equal(t, 0, out.Pending[0].Position)

	// The next ball cannot be bowled until the slot is filled.
	var mpe *MissingParticipantsError
	_, err = s.ApplyDelivery(Input{Runs: 1})
	require.ErrorAs(t, err, &mpe)
	assert.Equal(t, []string{"striker"}, mpe.Missing)
}

func TestOverCompletionRotationAndBowlerLookback(t *testing.T) {
	s := newLiveState(t)
	for i := 0; i < 5; i++ {
		_, err := s.ApplyDelivery(Input{Runs: 0})
		require.NoError(t, err)
	}

	out, err := s.ApplyDelivery(Input{Runs: 0})
	require.NoError(t, err)
	assert.True(t, out.OverCompleted)
	require.Len(t, out.Pending, 1)
	assert.Equal(t, PendingSelectBowler, out.Pending[0].Kind)

	// End-of-over swap: batsmen trade ends, bowler slot empties.
	assert.Equal(t, uint(2), *s.StrikerID)
	assert.Equal(t, uint(1), *s.NonStrikerID)
	assert.Nil(t, s.BowlerID)
	require.NotNil(t, s.LastOverBowlerID)
	assert.Equal(t, uint(10), *s.LastOverBowlerID)

	// The same bowler cannot take consecutive overs.
	var ve *ValidationError
	require.ErrorAs(t, s.SelectBowler(10), &ve)
	require.NoError(t, s.SelectBowler(11))

	// Once someone else bowls a ball the lookback expires.
	_, err = s.ApplyDelivery(Input{Runs: 0})
	require.NoError(t, err)
	assert.Nil(t, s.LastOverBowlerID)
	require.NoError(t, s.SelectBowler(10))
}

func TestWicketOnLastBallOfOver(t *testing.T) {
	s := newLiveState(t)
	for i := 0; i < 5; i++ {
		_, err := s.ApplyDelivery(Input{Runs: 0})
		require.NoError(t, err)
	}

	out, err := s.ApplyDelivery(Input{IsWicket: true})
	require.NoError(t, err)
	assert.True(t, out.OverCompleted)

	kinds := make([]PendingKind, 0, len(out.Pending))
	for _, p := range out.Pending {
		kinds = append(kinds, p.Kind)
	}
	assert.Contains(t, kinds, PendingSelectBowler)
	assert.Contains(t, kinds, PendingSelectBatsman)
}

func TestScoringScenario(t *testing.T) {
	s := newLiveState(t)

	type ball struct {
		runs   int
		wicket bool
	}
	overOne := []ball{{1, false}, {4, false}, {0, true}, {0, false}, {0, false}, {2, false}}
	for _, b := range overOne {
		if b.wicket {
			// Replacement striker comes in before play resumes.
			_, err := s.ApplyDelivery(Input{IsWicket: true})
			require.NoError(t, err)
			require.NoError(t, s.SelectBatsman(uintPtr(3), 0))
			continue
		}
		_, err := s.ApplyDelivery(Input{Runs: b.runs})
		require.NoError(t, err)
	}
	require.NoError(t, s.SelectBowler(11))

	overTwo := []ball{{1, false}, {6, false}, {1, false}, {1, false}, {0, false}, {0, false}}
	for _, b := range overTwo {
		_, err := s.ApplyDelivery(Input{Runs: b.runs})
		require.NoError(t, err)
	}

	assert.Equal(t, 16, s.TotalRuns)
	assert.Equal(t, 12, s.TotalBalls)
	assert.Equal(t, 1, s.Wickets)
	assert.Len(t, s.Deliveries, 12)
	assert.Equal(t, StatusLive, s.Status)
	assert.True(t, s.OversReached())
}

func TestUndoRoundTrip(t *testing.T) {
	s := newLiveState(t)
	_, err := s.ApplyDelivery(Input{Runs: 2})
	require.NoError(t, err)
	before := *s

	_, err = s.ApplyDelivery(Input{Runs: 4, IsNoBall: true})
	require.NoError(t, err)

	removed, err := s.UndoLastDelivery()
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, 4, removed.Runs)
	assert.True(t, removed.IsNoBall)

	assert.Equal(t, before.TotalRuns, s.TotalRuns)
	assert.Equal(t, before.TotalBalls, s.TotalBalls)
	assert.Equal(t, before.Extras, s.Extras)
	assert.Len(t, s.Deliveries, 1)
}

func TestUndoWicket(t *testing.T) {
	s := newLiveState(t)
	_, err := s.ApplyDelivery(Input{IsWicket: true})
	require.NoError(t, err)

	removed, err := s.UndoLastDelivery()
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.True(t, removed.IsWicket)
	assert.Equal(t, 0, s.Wickets)
	assert.Equal(t, 0, s.TotalBalls)
	// Selection side effects stay: the operator re-selects the striker.
	assert.Nil(t, s.StrikerID)
}

func TestUndoEmptyLedgerIsNoOp(t *testing.T) {
	s := newLiveState(t)
	removed, err := s.UndoLastDelivery()
	require.NoError(t, err)
	assert.Nil(t, removed)
}

func TestSelectBatsmanPositionValidation(t *testing.T) {
	s := newLiveState(t)
	var ve *ValidationError
	require.ErrorAs(t, s.SelectBatsman(uintPtr(3), 2), &ve)
}

func TestInningsTransition(t *testing.T) {
	s := newLiveState(t)
	_, err := s.ApplyDelivery(Input{Runs: 6})
	require.NoError(t, err)
	_, err = s.ApplyDelivery(Input{IsWicket: true})
	require.NoError(t, err)

	require.NoError(t, s.EndInnings())
	assert.Equal(t, StatusInningsComplete, s.Status)

	require.NoError(t, s.StartSecondInnings())
	require.NotNil(t, s.FirstInnings)
	assert.Equal(t, 6, s.FirstInnings.Runs)
	assert.Equal(t, 1, s.FirstInnings.Wickets)
	assert.Equal(t, 2, s.FirstInnings.Balls)
	assert.Equal(t, "team-a", s.FirstInnings.BattingTeamID)

	assert.Equal(t, "team-b", s.BattingTeamID)
	assert.Equal(t, "team-a", s.BowlingTeamID)
	assert.Equal(t, 2, s.Innings)
	assert.Equal(t, StatusLive, s.Status)
	assert.Equal(t, 0, s.TotalRuns)
	assert.Equal(t, 0, s.TotalBalls)
	assert.Equal(t, 0, s.Wickets)
	assert.Empty(t, s.Deliveries)
	assert.Nil(t, s.StrikerID)
	assert.Nil(t, s.BowlerID)
	assert.Nil(t, s.LastOverBowlerID)

	target, ok := s.Target()
	require.True(t, ok)
	assert.Equal(t, 7, target)
	assert.False(t, s.TargetReached())

	s.TotalRuns = 7
	assert.True(t, s.TargetReached())
}

func TestSecondInningsOnlyOnce(t *testing.T) {
	s := newLiveState(t)
	require.NoError(t, s.StartSecondInnings())
	var ise *IllegalStateError
	require.ErrorAs(t, s.StartSecondInnings(), &ise)
	require.ErrorAs(t, s.EndInnings(), &ise)
}

func TestCompleteAndReset(t *testing.T) {
	s := newLiveState(t)
	require.NoError(t, s.Complete())
	assert.Equal(t, StatusComplete, s.Status)

	var ise *IllegalStateError
	_, err := s.ApplyDelivery(Input{Runs: 1})
	require.ErrorAs(t, err, &ise)
	require.ErrorAs(t, s.Complete(), &ise)

	s.Reset()
	assert.Equal(t, StatusSetup, s.Status)
	assert.Equal(t, 1, s.Innings)
	assert.Empty(t, s.Deliveries)
	assert.Nil(t, s.FirstInnings)
}

func TestAllOut(t *testing.T) {
	s := newLiveState(t)
	assert.False(t, s.AllOut(5))
	s.Wickets = 4
	assert.True(t, s.AllOut(5))
	assert.False(t, s.AllOut(0))
}

func TestTargetUndefinedInFirstInnings(t *testing.T) {
	s := newLiveState(t)
	_, ok := s.Target()
	assert.False(t, ok)
	assert.False(t, s.TargetReached())
}
