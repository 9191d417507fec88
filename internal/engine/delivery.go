package engine

import "time"

// Delivery is one ledger entry: a single bowled attempt, legal or extra.
// Immutable once recorded except by UndoLastDelivery, which removes the
// newest entry wholesale.
type Delivery struct {
	ID        string    `json:"id"`
	Runs      int       `json:"runs"` // batsman-attributable runs, excludes the +1 extra
	IsNoBall  bool      `json:"isNoBall"`
	IsWide    bool      `json:"isWide"`
	IsWicket  bool      `json:"isWicket"`
	BatsmanID uint      `json:"batsmanId"`
	BowlerID  uint      `json:"bowlerId"`
	Timestamp time.Time `json:"timestamp"`
}

// Input is the operator's description of a delivery before it is recorded.
type Input struct {
	Runs     int  `json:"runs"`
	IsNoBall bool `json:"isNoBall"`
	IsWide   bool `json:"isWide"`
	IsWicket bool `json:"isWicket"`
}

// Classified tags a delivery's effect on the scoring totals.
type Classified struct {
	// Legal is true iff neither wide nor no-ball; only legal deliveries
	// advance the over/ball counter.
	Legal bool
	// ExtraRuns is the automatic extra run credited to the batting team
	// (1 for a wide or no-ball, else 0). Never credited to the striker.
	ExtraRuns int
	// BatsmanRuns equals the runs scored off the bat; on a no-ball the
	// striker can still score these in addition to the extra.
	BatsmanRuns int
}

// Classify categorizes a delivery. Deterministic, no side effects.
// Wide and no-ball are mutually exclusive; runs must be 0-6.
func Classify(runs int, isNoBall, isWide bool) (Classified, error) {
	if isNoBall && isWide {
		return Classified{}, ErrInvalidDelivery
	}
	if runs < 0 || runs > 6 {
		return Classified{}, ErrInvalidDelivery
	}
	c := Classified{
		Legal:       !isNoBall && !isWide,
		BatsmanRuns: runs,
	}
	if isNoBall || isWide {
		c.ExtraRuns = 1
	}
	return c, nil
}
