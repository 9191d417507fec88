package player

import "gorm.io/gorm"

// Player is a roster entry with its cumulative stats for the current match
// cycle. Stats are zeroed (not the row deleted) on match reset; the row only
// goes away on explicit removal.
type Player struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	// Batting
	Runs  int  `json:"runs" gorm:"default:0"`
	Balls int  `json:"balls" gorm:"default:0"`
	Fours int  `json:"fours" gorm:"default:0"`
	Sixes int  `json:"sixes" gorm:"default:0"`
	IsOut bool `json:"isOut" gorm:"default:false"`

	// Bowling
	Wickets      int `json:"wickets" gorm:"default:0"`
	OversBowled  int `json:"oversBowled" gorm:"default:0"` // stored as legal ball count
	RunsConceded int `json:"runsConceded" gorm:"default:0"`
}
