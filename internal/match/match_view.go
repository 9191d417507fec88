package match

import (
	"github.com/gin-gonic/gin"

	"github.com/gullyscore/api/internal/engine"
	"github.com/gullyscore/api/internal/player"
)

// battingEntry is a scorecard row with its derived display rate.
type battingEntry struct {
	engine.PlayerCard
	StrikeRate string `json:"strikeRate"`
}

// bowlingEntry is a scorecard row with its derived overs figure and economy.
type bowlingEntry struct {
	engine.PlayerCard
	Overs   string `json:"overs"`
	Economy string `json:"economy"`
}

func toPlayerCards(players []player.Player) []engine.PlayerCard {
	cards := make([]engine.PlayerCard, 0, len(players))
	for _, p := range players {
		cards = append(cards, engine.PlayerCard{
			ID:           p.ID,
			Name:         p.Name,
			Runs:         p.Runs,
			Balls:        p.Balls,
			Fours:        p.Fours,
			Sixes:        p.Sixes,
			IsOut:        p.IsOut,
			Wickets:      p.Wickets,
			BallsBowled:  p.OversBowled,
			RunsConceded: p.RunsConceded,
		})
	}
	return cards
}

func toBattingEntries(cards []engine.PlayerCard) []battingEntry {
	entries := make([]battingEntry, 0, len(cards))
	for _, c := range cards {
		entries = append(entries, battingEntry{
			PlayerCard: c,
			StrikeRate: engine.StrikeRate(c.Runs, c.Balls),
		})
	}
	return entries
}

func toBowlingEntries(cards []engine.PlayerCard) []bowlingEntry {
	entries := make([]bowlingEntry, 0, len(cards))
	for _, c := range cards {
		entries = append(entries, bowlingEntry{
			PlayerCard: c,
			Overs:      engine.FormatOvers(c.BallsBowled),
			Economy:    engine.EconomyRate(c.RunsConceded, c.BallsBowled),
		})
	}
	return entries
}

// buildMatchView attaches the derived, never-stored live block to the match
// document.
func buildMatchView(m *Match, rosters map[string]engine.Roster) gin.H {
	state := m.EngineState()

	live := gin.H{
		"oversDisplay":         engine.FormatOvers(state.TotalBalls),
		"currentOver":          engine.CurrentOver(state.TotalBalls),
		"ballsRemainingInOver": engine.BallsRemainingInOver(state.TotalBalls),
		"currentRunRate":       engine.RunRate(state.TotalRuns, state.TotalBalls),
		"oversReached":         state.OversReached(),
	}
	if roster, ok := rosters[state.BattingTeamID]; ok {
		live["allOut"] = state.AllOut(roster.Size)
	}
	if target, ok := state.Target(); ok {
		live["target"] = target
		needed := target - state.TotalRuns
		if needed < 0 {
			needed = 0
		}
		live["runsNeeded"] = needed
		live["targetReached"] = state.TargetReached()
		if state.OversLimit != nil {
			if rrr, ok := engine.RequiredRunRate(target, state.TotalRuns, *state.OversLimit, state.TotalBalls); ok {
				live["requiredRunRate"] = rrr
			}
		}
	}
	if result, ok := engine.ResultText(&state, rosters); ok {
		live["result"] = result
	}

	return gin.H{"match": m, "live": live}
}
