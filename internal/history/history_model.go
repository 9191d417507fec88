package history

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Document is an opaque jsonb snapshot column. Archived records are frozen
// copies; nothing ever queries inside them.
type Document json.RawMessage

func (d Document) Value() (driver.Value, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

func (d *Document) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*d = append(Document(nil), v...)
	case string:
		*d = Document(v)
	default:
		return errors.New("unsupported type for Document")
	}
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}

// Record is one archived match: the final match document plus frozen player
// and team snapshots, so the summary survives later roster edits.
type Record struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Result        string    `json:"result"`
	ManOfTheMatch string    `json:"manOfTheMatch,omitempty"`
	Match         Document  `json:"match" gorm:"type:jsonb"`
	Players       Document  `json:"players" gorm:"type:jsonb"`
	Teams         Document  `json:"teams" gorm:"type:jsonb"`
	ArchivedAt    time.Time `json:"archivedAt" gorm:"autoCreateTime"`
}

// TableName keeps the table name descriptive rather than gorm's default
// pluralization of Record.
func (Record) TableName() string {
	return "match_history"
}
