package engine

import "fmt"

// Pure display-rate math. Nothing here is ever stored; callers derive these
// on demand from the raw ball and run counts.

// FormatOvers renders a ball count in cricket overs notation,
// e.g. 14 balls -> "2.2".
func FormatOvers(balls int) string {
	return fmt.Sprintf("%d.%d", balls/6, balls%6)
}

// StrikeRate is runs per 100 balls faced, one decimal place.
func StrikeRate(runs, balls int) string {
	if balls == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(runs)/float64(balls)*100)
}

// EconomyRate is runs conceded per over bowled, two decimals.
func EconomyRate(runsConceded, ballsBowled int) string {
	if ballsBowled == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runsConceded)/(float64(ballsBowled)/6))
}

// RunRate is total runs per over, two decimals.
func RunRate(runs, balls int) string {
	if balls == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(runs)/(float64(balls)/6))
}

// RequiredRunRate is the rate the chasing side needs over its remaining
// balls. Defined only during a chase with an overs limit and balls left.
func RequiredRunRate(target, totalRuns, oversLimit, totalBalls int) (string, bool) {
	ballsLeft := OversToBalls(oversLimit) - totalBalls
	if ballsLeft <= 0 {
		return "", false
	}
	needed := target - totalRuns
	if needed < 0 {
		needed = 0
	}
	return fmt.Sprintf("%.2f", float64(needed)/(float64(ballsLeft)/6)), true
}

// OversToBalls converts an overs limit to total balls.
func OversToBalls(overs int) int {
	return overs * 6
}

// OverComplete reports whether the current over just finished.
func OverComplete(balls int) bool {
	return balls > 0 && balls%6 == 0
}

// CurrentOver is the 1-indexed over in progress.
func CurrentOver(balls int) int {
	return balls/6 + 1
}

// BallsRemainingInOver counts legal balls left in the current over.
func BallsRemainingInOver(balls int) int {
	return 6 - balls%6
}
