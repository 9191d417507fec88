package engine

import (
	"fmt"
	"sort"
	"strconv"
)

// PlayerCard is a player's full stat snapshot as the summary resolver sees
// it, decoupled from how the caller stores players.
type PlayerCard struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Runs         int    `json:"runs"`
	Balls        int    `json:"balls"`
	Fours        int    `json:"fours"`
	Sixes        int    `json:"sixes"`
	IsOut        bool   `json:"isOut"`
	Wickets      int    `json:"wickets"`
	BallsBowled  int    `json:"oversBowled"` // legal balls, rendered via FormatOvers
	RunsConceded int    `json:"runsConceded"`
}

// Roster describes one side for result computation.
type Roster struct {
	ID   string
	Name string
	Size int
}

// ResultText computes the definitive match result line. Only a completed
// two-innings match has one; everything else returns ok=false and the
// caller shows its own placeholder.
func ResultText(s *State, rosters map[string]Roster) (string, bool) {
	if s.Status != StatusComplete || s.Innings != 2 || s.FirstInnings == nil {
		return "", false
	}
	first, ok := rosters[s.FirstInnings.BattingTeamID]
	if !ok {
		return "", false
	}
	second, ok := rosters[s.BattingTeamID]
	if !ok {
		return "", false
	}

	firstScore := s.FirstInnings.Runs
	secondScore := s.TotalRuns
	switch {
	case secondScore > firstScore:
		wicketsRemaining := second.Size - 1 - s.Wickets
		if wicketsRemaining < 0 {
			wicketsRemaining = 0
		}
		return fmt.Sprintf("%s won by %d wicket%s", second.Name, wicketsRemaining, plural(wicketsRemaining)), true
	case firstScore > secondScore:
		diff := firstScore - secondScore
		return fmt.Sprintf("%s won by %d run%s", first.Name, diff, plural(diff)), true
	default:
		return "Match Tied", true
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// ManOfTheMatch picks the standout player: the top scorer unless the top
// wicket-taker's haul outweighs it at roughly 20 runs per wicket. Ties go to
// the first player encountered. Nil when nobody has a run or a wicket.
func ManOfTheMatch(players []PlayerCard) *PlayerCard {
	if len(players) == 0 {
		return nil
	}
	topScorer := players[0]
	topWicketTaker := players[0]
	for _, p := range players[1:] {
		if p.Runs > topScorer.Runs {
			topScorer = p
		}
		if p.Wickets > topWicketTaker.Wickets {
			topWicketTaker = p
		}
	}
	if topScorer.Runs == 0 && topWicketTaker.Wickets == 0 {
		return nil
	}
	if topScorer.Runs >= topWicketTaker.Wickets*20 {
		return &topScorer
	}
	return &topWicketTaker
}

// BattingScorecard returns the players who batted, highest score first.
func BattingScorecard(players []PlayerCard) []PlayerCard {
	card := make([]PlayerCard, 0, len(players))
	for _, p := range players {
		if p.Balls > 0 || p.Runs > 0 {
			card = append(card, p)
		}
	}
	sort.SliceStable(card, func(i, j int) bool {
		return card[i].Runs > card[j].Runs
	})
	return card
}

// BowlingScorecard returns the players who bowled, sorted by wickets taken
// then by economy rate.
func BowlingScorecard(players []PlayerCard) []PlayerCard {
	card := make([]PlayerCard, 0, len(players))
	for _, p := range players {
		if p.BallsBowled > 0 {
			card = append(card, p)
		}
	}
	sort.SliceStable(card, func(i, j int) bool {
		if card[i].Wickets != card[j].Wickets {
			return card[i].Wickets > card[j].Wickets
		}
		ei, _ := strconv.ParseFloat(EconomyRate(card[i].RunsConceded, card[i].BallsBowled), 64)
		ej, _ := strconv.ParseFloat(EconomyRate(card[j].RunsConceded, card[j].BallsBowled), 64)
		return ei < ej
	})
	return card
}
