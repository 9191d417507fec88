package engine

import (
	"time"

	"github.com/google/uuid"
)

// Status is the match lifecycle state.
type Status string

const (
	StatusSetup           Status = "setup"
	StatusLive            Status = "live"
	StatusInningsComplete Status = "innings_complete"
	StatusComplete        Status = "complete"
)

// Extras counts runs conceded without the bat.
type Extras struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"noBalls"`
}

// InningsScore is the snapshot taken when the second innings begins.
type InningsScore struct {
	Runs          int    `json:"runs"`
	Wickets       int    `json:"wickets"`
	Balls         int    `json:"balls"`
	BattingTeamID string `json:"battingTeamId"`
}

// PendingKind names an operator action the engine requires before the next
// delivery can be recorded.
type PendingKind string

const (
	PendingSelectBowler  PendingKind = "select_bowler"
	PendingSelectBatsman PendingKind = "select_batsman"
)

// PendingAction is a required operator follow-up, resolved in order.
// Position is meaningful only for PendingSelectBatsman (0 striker,
// 1 non-striker).
type PendingAction struct {
	Kind     PendingKind `json:"kind"`
	Position int         `json:"position,omitempty"`
}

// Outcome reports what a recorded delivery did to the match.
type Outcome struct {
	Ball          Delivery        `json:"ball"`
	Classified    Classified      `json:"-"`
	OverCompleted bool            `json:"overCompleted"`
	Pending       []PendingAction `json:"pending,omitempty"`
}

// Config is the pre-match setup applied while the match is in setup state.
type Config struct {
	Name            string
	OversLimit      *int
	BattingTeamID   string
	BowlingTeamID   string
	BattingTeamSize int
	BowlingTeamSize int
}

// State is the complete in-memory match record. It is a plain value: every
// operation either fully commits a consistent new state or returns an error
// leaving the receiver untouched. The caller owns persistence.
type State struct {
	Name                      string        `json:"name"`
	OversLimit                *int          `json:"oversLimit"`
	BattingTeamID             string        `json:"battingTeamId,omitempty"`
	BowlingTeamID             string        `json:"bowlingTeamId,omitempty"`
	StrikerID                 *uint         `json:"strikerId"`
	NonStrikerID              *uint         `json:"nonStrikerId"`
	BowlerID                  *uint         `json:"currentBowlerId"`
	LastOverBowlerID          *uint         `json:"lastOverBowlerId"`
	TotalRuns                 int           `json:"totalRuns"`
	Wickets                   int           `json:"wickets"`
	TotalBalls                int           `json:"totalBalls"` // legal deliveries only
	Extras                    Extras        `json:"extras"`
	Deliveries                []Delivery    `json:"ballByBall"`
	Innings                   int           `json:"innings"`
	FirstInnings              *InningsScore `json:"firstInningsScore"`
	FirstInningsBattingTeamID string        `json:"firstInningsBattingTeamId,omitempty"`
	Status                    Status        `json:"status"`
}

// NewState returns the default setup-state record.
func NewState() State {
	return State{
		Deliveries: []Delivery{},
		Innings:    1,
		Status:     StatusSetup,
	}
}

// Configure applies the match setup. Valid only in setup state.
func (s *State) Configure(cfg Config) error {
	if s.Status != StatusSetup {
		return &IllegalStateError{Op: "configure", Status: s.Status}
	}
	if cfg.BattingTeamID == "" || cfg.BowlingTeamID == "" {
		return &ValidationError{Message: "both batting and bowling teams must be selected"}
	}
	if cfg.BattingTeamID == cfg.BowlingTeamID {
		return &ValidationError{Message: "batting and bowling teams must be different"}
	}
	if cfg.BattingTeamSize == 0 || cfg.BowlingTeamSize == 0 {
		return &ValidationError{Message: "both teams need at least one player"}
	}
	if cfg.OversLimit != nil && *cfg.OversLimit <= 0 {
		return &ValidationError{Message: "overs limit must be positive"}
	}
	s.Name = cfg.Name
	s.OversLimit = cfg.OversLimit
	s.BattingTeamID = cfg.BattingTeamID
	s.BowlingTeamID = cfg.BowlingTeamID
	s.Deliveries = []Delivery{}
	return nil
}

// Start moves the match to live play. Batsman/bowler selection happens
// in-play, but the batting side must already be configured.
func (s *State) Start() error {
	if s.Status != StatusSetup {
		return &IllegalStateError{Op: "start", Status: s.Status}
	}
	if s.BattingTeamID == "" {
		return &ValidationError{Message: "match is not configured"}
	}
	s.FirstInningsBattingTeamID = s.BattingTeamID
	s.Status = StatusLive
	return nil
}

// ApplyDelivery folds one delivery into the match: totals, extras, wicket
// count, the ledger, strike rotation and over completion. It returns the
// ordered operator actions still required (new bowler, replacement batsman)
// instead of sequencing them through the caller's UI.
func (s *State) ApplyDelivery(in Input) (*Outcome, error) {
	if s.Status != StatusLive {
		return nil, &IllegalStateError{Op: "record ball", Status: s.Status}
	}
	var missing []string
	if s.StrikerID == nil {
		missing = append(missing, "striker")
	}
	if s.BowlerID == nil {
		missing = append(missing, "bowler")
	}
	if len(missing) > 0 {
		return nil, &MissingParticipantsError{Missing: missing}
	}
	cls, err := Classify(in.Runs, in.IsNoBall, in.IsWide)
	if err != nil {
		return nil, err
	}

	// The new bowler has now bowled a ball of the next over, so the
	// single-over lookback expires.
	if s.LastOverBowlerID != nil && *s.BowlerID != *s.LastOverBowlerID {
		s.LastOverBowlerID = nil
	}

	ball := Delivery{
		ID:        uuid.NewString(),
		Runs:      in.Runs,
		IsNoBall:  in.IsNoBall,
		IsWide:    in.IsWide,
		IsWicket:  in.IsWicket,
		BatsmanID: *s.StrikerID,
		BowlerID:  *s.BowlerID,
		Timestamp: time.Now().UTC(),
	}

	s.TotalRuns += cls.BatsmanRuns + cls.ExtraRuns
	if cls.Legal {
		s.TotalBalls++
	}
	if in.IsWide {
		s.Extras.Wides++
	} else if in.IsNoBall {
		s.Extras.NoBalls++
	}
	if in.IsWicket {
		s.Wickets++
		s.StrikerID = nil
	}
	s.Deliveries = append(s.Deliveries, ball)

	// Odd runs off the bat rotate strike regardless of delivery type.
	if cls.BatsmanRuns%2 == 1 {
		s.swapStrike()
	}

	out := &Outcome{Ball: ball, Classified: cls}
	if cls.Legal && OverComplete(s.TotalBalls) {
		out.OverCompleted = true
		// End-of-over rotation composes with the odd-run swap.
		s.swapStrike()
		last := ball.BowlerID
		s.LastOverBowlerID = &last
		s.BowlerID = nil
		out.Pending = append(out.Pending, PendingAction{Kind: PendingSelectBowler})
		if s.StrikerID == nil {
			out.Pending = append(out.Pending, PendingAction{Kind: PendingSelectBatsman, Position: 0})
		}
		if s.NonStrikerID == nil {
			out.Pending = append(out.Pending, PendingAction{Kind: PendingSelectBatsman, Position: 1})
		}
	} else if in.IsWicket {
		out.Pending = append(out.Pending, PendingAction{Kind: PendingSelectBatsman, Position: 0})
	}
	return out, nil
}

func (s *State) swapStrike() {
	s.StrikerID, s.NonStrikerID = s.NonStrikerID, s.StrikerID
}

// UndoLastDelivery removes the newest ledger entry and exactly reverses the
// match totals it contributed. Strike rotation and bowler/batsman clearing
// are not reversed; the operator fixes selection manually. Returns the
// removed delivery so the caller can invert its player stat deltas, or nil
// when the ledger is empty (a no-op).
func (s *State) UndoLastDelivery() (*Delivery, error) {
	if s.Status != StatusLive {
		return nil, &IllegalStateError{Op: "undo", Status: s.Status}
	}
	if len(s.Deliveries) == 0 {
		return nil, nil
	}
	last := s.Deliveries[len(s.Deliveries)-1]
	s.Deliveries = s.Deliveries[:len(s.Deliveries)-1]

	s.TotalRuns -= last.Runs
	if last.IsWide {
		s.TotalRuns--
		s.Extras.Wides--
	} else if last.IsNoBall {
		s.TotalRuns--
		s.Extras.NoBalls--
	} else {
		s.TotalBalls--
	}
	if last.IsWicket {
		s.Wickets--
	}
	return &last, nil
}

// SelectBatsman fills a batting slot: position 0 is the striker, 1 the
// non-striker. A nil id clears the slot.
func (s *State) SelectBatsman(id *uint, position int) error {
	switch position {
	case 0:
		s.StrikerID = id
	case 1:
		s.NonStrikerID = id
	default:
		return &ValidationError{Message: "batsman position must be 0 or 1"}
	}
	return nil
}

// SelectBowler sets the current bowler. The bowler of the immediately
// preceding over is ineligible until someone else bowls a ball.
func (s *State) SelectBowler(id uint) error {
	if s.LastOverBowlerID != nil && *s.LastOverBowlerID == id {
		return &ValidationError{Message: "bowler cannot bowl two consecutive overs"}
	}
	s.BowlerID = &id
	return nil
}

// EndInnings closes the first innings, preserving totals for the snapshot
// taken when the second innings starts.
func (s *State) EndInnings() error {
	if s.Status != StatusLive || s.Innings != 1 {
		return &IllegalStateError{Op: "end innings", Status: s.Status}
	}
	s.Status = StatusInningsComplete
	return nil
}

// StartSecondInnings snapshots the first innings, swaps the sides and
// resets the live counters for the chase.
func (s *State) StartSecondInnings() error {
	if s.Innings != 1 || (s.Status != StatusLive && s.Status != StatusInningsComplete) {
		return &IllegalStateError{Op: "start second innings", Status: s.Status}
	}
	s.FirstInnings = &InningsScore{
		Runs:          s.TotalRuns,
		Wickets:       s.Wickets,
		Balls:         s.TotalBalls,
		BattingTeamID: s.BattingTeamID,
	}
	s.BattingTeamID, s.BowlingTeamID = s.BowlingTeamID, s.BattingTeamID
	s.StrikerID = nil
	s.NonStrikerID = nil
	s.BowlerID = nil
	s.LastOverBowlerID = nil
	s.TotalRuns = 0
	s.Wickets = 0
	s.TotalBalls = 0
	s.Extras = Extras{}
	s.Deliveries = []Delivery{}
	s.Innings = 2
	s.Status = StatusLive
	return nil
}

// Complete ends the match. Terminal; no further deliveries are accepted.
func (s *State) Complete() error {
	if s.Status != StatusLive && s.Status != StatusInningsComplete {
		return &IllegalStateError{Op: "complete match", Status: s.Status}
	}
	s.Status = StatusComplete
	return nil
}

// Reset forces the default setup record regardless of current status.
// Zeroing the player stat records is the caller's half of the bundle.
func (s *State) Reset() {
	*s = NewState()
}

// AllOut reports whether the batting side has no batsmen left, given its
// roster size.
func (s *State) AllOut(battingTeamSize int) bool {
	return battingTeamSize > 0 && s.Wickets >= battingTeamSize-1
}

// OversReached reports whether the configured overs limit is exhausted.
func (s *State) OversReached() bool {
	return s.OversLimit != nil && s.TotalBalls >= OversToBalls(*s.OversLimit)
}

// Target returns the chase target. Defined only in the second innings.
func (s *State) Target() (int, bool) {
	if s.Innings != 2 || s.FirstInnings == nil {
		return 0, false
	}
	return s.FirstInnings.Runs + 1, true
}

// TargetReached reports whether the chasing side has passed the target.
func (s *State) TargetReached() bool {
	target, ok := s.Target()
	return ok && s.TotalRuns >= target
}
