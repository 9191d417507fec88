package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRosters() map[string]Roster {
	return map[string]Roster{
		"team-a": {ID: "team-a", Name: "Strikers", Size: 11},
		"team-b": {ID: "team-b", Name: "Chasers", Size: 11},
	}
}

func completedChase(firstRuns, secondRuns, secondWickets int) *State {
	return &State{
		BattingTeamID: "team-b",
		BowlingTeamID: "team-a",
		TotalRuns:     secondRuns,
		Wickets:       secondWickets,
		Innings:       2,
		FirstInnings: &InningsScore{
			Runs:          firstRuns,
			BattingTeamID: "team-a",
		},
		Status: StatusComplete,
	}
}

func TestResultTextChaserWins(t *testing.T) {
	result, ok := ResultText(completedChase(120, 121, 4), testRosters())
	require.True(t, ok)
	assert.Equal(t, "Chasers won by 6 wickets", result)
}

func TestResultTextSingleWicket(t *testing.T) {
	result, ok := ResultText(completedChase(120, 121, 9), testRosters())
	require.True(t, ok)
	assert.Equal(t, "Chasers won by 1 wicket", result)
}

func TestResultTextDefenderWins(t *testing.T) {
	result, ok := ResultText(completedChase(150, 120, 10), testRosters())
	require.True(t, ok)
	assert.Equal(t, "Strikers won by 30 runs", result)
}

func TestResultTextSingleRun(t *testing.T) {
	result, ok := ResultText(completedChase(121, 120, 10), testRosters())
	require.True(t, ok)
	assert.Equal(t, "Strikers won by 1 run", result)
}

func TestResultTextTie(t *testing.T) {
	result, ok := ResultText(completedChase(120, 120, 8), testRosters())
	require.True(t, ok)
	assert.Equal(t, "Match Tied", result)
}

func TestResultTextUndefinedBeforeCompletion(t *testing.T) {
	s := completedChase(120, 121, 4)
	s.Status = StatusLive
	_, ok := ResultText(s, testRosters())
	assert.False(t, ok)

	// One-innings matches have no computed result either.
	s = completedChase(120, 121, 4)
	s.Innings = 1
	s.FirstInnings = nil
	_, ok = ResultText(s, testRosters())
	assert.False(t, ok)
}

func TestManOfTheMatchTopScorer(t *testing.T) {
	mom := ManOfTheMatch([]PlayerCard{
		{Name: "Asha", Runs: 45},
		{Name: "Vik", Runs: 12, Wickets: 2},
	})
	require.NotNil(t, mom)
	assert.Equal(t, "Asha", mom.Name)
}

func TestManOfTheMatchWicketTakerOutweighs(t *testing.T) {
	// 3 wickets weigh 60; a top score of 45 loses.
	mom := ManOfTheMatch([]PlayerCard{
		{Name: "Asha", Runs: 45},
		{Name: "Vik", Runs: 10, Wickets: 3},
	})
	require.NotNil(t, mom)
	assert.Equal(t, "Vik", mom.Name)
}

func TestManOfTheMatchEqualWeightGoesToScorer(t *testing.T) {
	mom := ManOfTheMatch([]PlayerCard{
		{Name: "Asha", Runs: 40},
		{Name: "Vik", Wickets: 2},
	})
	require.NotNil(t, mom)
	assert.Equal(t, "Asha", mom.Name)
}

func TestManOfTheMatchNobodyDidAnything(t *testing.T) {
	assert.Nil(t, ManOfTheMatch([]PlayerCard{{Name: "Asha"}, {Name: "Vik"}}))
	assert.Nil(t, ManOfTheMatch(nil))
}

func TestBattingScorecard(t *testing.T) {
	card := BattingScorecard([]PlayerCard{
		{Name: "DidNotBat"},
		{Name: "Duck", Balls: 3},
		{Name: "Opener", Runs: 30, Balls: 20},
		{Name: "Finisher", Runs: 42, Balls: 18},
	})
	require.Len(t, card, 3)
	assert.Equal(t, "Finisher", card[0].Name)
	assert.Equal(t, "Opener", card[1].Name)
	assert.Equal(t, "Duck", card[2].Name)
}

func TestBowlingScorecard(t *testing.T) {
	card := BowlingScorecard([]PlayerCard{
		{Name: "DidNotBowl"},
		{Name: "Expensive", BallsBowled: 12, RunsConceded: 30, Wickets: 1},
		{Name: "Tight", BallsBowled: 12, RunsConceded: 10, Wickets: 1},
		{Name: "Strike", BallsBowled: 6, RunsConceded: 15, Wickets: 3},
	})
	require.Len(t, card, 3)
	assert.Equal(t, "Strike", card[0].Name)
	// Equal wickets sort by economy.
	assert.Equal(t, "Tight", card[1].Name)
	assert.Equal(t, "Expensive", card[2].Name)
}
