package team

import "time"

// Fixed team identifiers. Exactly two sides exist and they are created at
// startup; renaming is allowed, deleting is not.
const (
	TeamAID = "team-a"
	TeamBID = "team-b"
)

// Team is one of the two sides.
type Team struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMember assigns a player to a side. The unique index on PlayerID keeps
// any player on at most one team.
type TeamMember struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	TeamID   string `json:"teamId" gorm:"index;not null"`
	PlayerID uint   `json:"playerId" gorm:"uniqueIndex;not null"`
}

// TeamView is a team plus its membership, in assignment order.
type TeamView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PlayerIDs []uint `json:"playerIds"`
}
