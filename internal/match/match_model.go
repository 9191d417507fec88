package match

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/gullyscore/api/internal/engine"
)

// CurrentMatchID is the fixed primary key of the single live match row. The
// app tracks exactly one match at a time; finished matches move to history.
const CurrentMatchID = "current"

// DeliveryLedger stores the ball-by-ball record as a jsonb column.
type DeliveryLedger []engine.Delivery

func (l DeliveryLedger) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]engine.Delivery{})
	}
	return json.Marshal(l)
}

func (l *DeliveryLedger) Scan(value interface{}) error {
	if value == nil {
		*l = DeliveryLedger{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			bytes = []byte(s)
		} else {
			return errors.New("unsupported type for DeliveryLedger")
		}
	}
	return json.Unmarshal(bytes, l)
}

// InningsSnapshot stores the first-innings score as a nullable jsonb column.
// A nil Score maps to SQL NULL.
type InningsSnapshot struct {
	Score *engine.InningsScore
}

func (s InningsSnapshot) Value() (driver.Value, error) {
	if s.Score == nil {
		return nil, nil
	}
	return json.Marshal(s.Score)
}

func (s *InningsSnapshot) Scan(value interface{}) error {
	if value == nil {
		s.Score = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, isStr := value.(string); isStr {
			bytes = []byte(str)
		} else {
			return errors.New("unsupported type for InningsSnapshot")
		}
	}
	score := &engine.InningsScore{}
	if err := json.Unmarshal(bytes, score); err != nil {
		return err
	}
	s.Score = score
	return nil
}

func (s InningsSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Score)
}

func (s *InningsSnapshot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		s.Score = nil
		return nil
	}
	score := &engine.InningsScore{}
	if err := json.Unmarshal(data, score); err != nil {
		return err
	}
	s.Score = score
	return nil
}

// Match is the persisted form of the live match. Scalar fields mirror the
// scoring engine's state one to one; the ledger and the first-innings
// snapshot live in jsonb columns.
type Match struct {
	ID                        string          `json:"-" gorm:"primaryKey"`
	Name                      string          `json:"name"`
	OversLimit                *int            `json:"oversLimit"`
	BattingTeamID             string          `json:"battingTeamId,omitempty"`
	BowlingTeamID             string          `json:"bowlingTeamId,omitempty"`
	StrikerID                 *uint           `json:"strikerId"`
	NonStrikerID              *uint           `json:"nonStrikerId"`
	BowlerID                  *uint           `json:"currentBowlerId"`
	LastOverBowlerID          *uint           `json:"lastOverBowlerId"`
	TotalRuns                 int             `json:"totalRuns" gorm:"default:0"`
	Wickets                   int             `json:"wickets" gorm:"default:0"`
	TotalBalls                int             `json:"totalBalls" gorm:"default:0"`
	Wides                     int             `json:"-" gorm:"default:0"`
	NoBalls                   int             `json:"-" gorm:"default:0"`
	Deliveries                DeliveryLedger  `json:"ballByBall" gorm:"type:jsonb"`
	Innings                   int             `json:"innings" gorm:"default:1"`
	FirstInnings              InningsSnapshot `json:"firstInningsScore" gorm:"type:jsonb"`
	FirstInningsBattingTeamID string          `json:"firstInningsBattingTeamId,omitempty"`
	Status                    string          `json:"status"`
	CreatedAt                 time.Time       `json:"createdAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// MarshalJSON flattens the extras for API consumers.
func (m Match) MarshalJSON() ([]byte, error) {
	type alias Match
	return json.Marshal(struct {
		alias
		Extras engine.Extras `json:"extras"`
	}{
		alias:  alias(m),
		Extras: engine.Extras{Wides: m.Wides, NoBalls: m.NoBalls},
	})
}

// NewDefaultMatch returns the setup-state singleton row.
func NewDefaultMatch() *Match {
	m := &Match{ID: CurrentMatchID}
	m.ApplyEngineState(engine.NewState())
	return m
}

// EngineState reconstructs the scoring engine's state from the row.
func (m *Match) EngineState() engine.State {
	return engine.State{
		Name:                      m.Name,
		OversLimit:                m.OversLimit,
		BattingTeamID:             m.BattingTeamID,
		BowlingTeamID:             m.BowlingTeamID,
		StrikerID:                 m.StrikerID,
		NonStrikerID:              m.NonStrikerID,
		BowlerID:                  m.BowlerID,
		LastOverBowlerID:          m.LastOverBowlerID,
		TotalRuns:                 m.TotalRuns,
		Wickets:                   m.Wickets,
		TotalBalls:                m.TotalBalls,
		Extras:                    engine.Extras{Wides: m.Wides, NoBalls: m.NoBalls},
		Deliveries:                []engine.Delivery(m.Deliveries),
		Innings:                   m.Innings,
		FirstInnings:              m.FirstInnings.Score,
		FirstInningsBattingTeamID: m.FirstInningsBattingTeamID,
		Status:                    engine.Status(m.Status),
	}
}

// ApplyEngineState writes the engine's state back onto the row.
func (m *Match) ApplyEngineState(s engine.State) {
	m.Name = s.Name
	m.OversLimit = s.OversLimit
	m.BattingTeamID = s.BattingTeamID
	m.BowlingTeamID = s.BowlingTeamID
	m.StrikerID = s.StrikerID
	m.NonStrikerID = s.NonStrikerID
	m.BowlerID = s.BowlerID
	m.LastOverBowlerID = s.LastOverBowlerID
	m.TotalRuns = s.TotalRuns
	m.Wickets = s.Wickets
	m.TotalBalls = s.TotalBalls
	m.Wides = s.Extras.Wides
	m.NoBalls = s.Extras.NoBalls
	m.Deliveries = DeliveryLedger(s.Deliveries)
	m.Innings = s.Innings
	m.FirstInnings = InningsSnapshot{Score: s.FirstInnings}
	m.FirstInningsBattingTeamID = s.FirstInningsBattingTeamID
	m.Status = string(s.Status)
}
