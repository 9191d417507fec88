package engine

// BattingDelta is the stat change a single delivery applies to the striker.
// Out is nil when the delivery does not change the dismissed flag.
type BattingDelta struct {
	Runs  int
	Balls int
	Fours int
	Sixes int
	Out   *bool
}

// BowlingDelta is the stat change a single delivery applies to the bowler.
// BallsBowled is the legal-ball count backing the overs figure.
type BowlingDelta struct {
	BallsBowled  int
	RunsConceded int
	Wickets      int
}

// DeliveryDeltas computes the stat deltas for the striker and bowler of a
// recorded delivery. The caller applies both atomically, never one without
// the other. Ledger entries are pre-validated, so classification cannot fail.
func DeliveryDeltas(d Delivery) (BattingDelta, BowlingDelta) {
	cls, _ := Classify(d.Runs, d.IsNoBall, d.IsWide)

	bat := BattingDelta{Runs: cls.BatsmanRuns}
	if cls.Legal {
		// Wides and no-balls never count as a ball faced.
		bat.Balls = 1
	}
	if cls.BatsmanRuns == 4 {
		bat.Fours = 1
	}
	if cls.BatsmanRuns == 6 {
		bat.Sixes = 1
	}
	if d.IsWicket {
		out := true
		bat.Out = &out
	}

	bowl := BowlingDelta{
		// The bowler is charged the scored runs plus the extra run.
		RunsConceded: cls.BatsmanRuns + cls.ExtraRuns,
	}
	if cls.Legal {
		bowl.BallsBowled = 1
	}
	if d.IsWicket {
		bowl.Wickets = 1
	}
	return bat, bowl
}

// Inverse returns the delta that exactly reverses d, for undoing the
// delivery it was computed from. Always derive the inverse from the original
// ledger entry, never from current totals.
func (d BattingDelta) Inverse() BattingDelta {
	inv := BattingDelta{
		Runs:  -d.Runs,
		Balls: -d.Balls,
		Fours: -d.Fours,
		Sixes: -d.Sixes,
	}
	if d.Out != nil {
		notOut := !*d.Out
		inv.Out = &notOut
	}
	return inv
}

// Inverse returns the delta that exactly reverses d.
func (d BowlingDelta) Inverse() BowlingDelta {
	return BowlingDelta{
		BallsBowled:  -d.BallsBowled,
		RunsConceded: -d.RunsConceded,
		Wickets:      -d.Wickets,
	}
}
