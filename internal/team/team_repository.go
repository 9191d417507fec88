package team

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/gullyscore/api/internal/engine"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	EnsureDefaults() error
	GetConfig() ([]TeamView, error)
	GetTeamView(teamID string) (*TeamView, error)
	ReplaceConfig(views []TeamView) error
	PlayerIDs(teamID string) ([]uint, error)
	RemovePlayerEverywhere(playerID uint) error
	ResetMemberships() error
	ResetToDefaults() error

	// Rosters shapes both sides for the scoring engine.
	Rosters() (map[string]engine.Roster, error)

	CountExistingPlayers(ids []uint) (int64, error)

	WithTransaction(txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// EnsureDefaults creates the two fixed teams if they do not exist yet. Called
// once at startup after migration.
func (r *teamRepository) EnsureDefaults() error {
	defaults := []Team{
		{ID: TeamAID, Name: "Team A"},
		{ID: TeamBID, Name: "Team B"},
	}
	for _, t := range defaults {
		if err := r.db.Where(Team{ID: t.ID}).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *teamRepository) GetConfig() ([]TeamView, error) {
	views := make([]TeamView, 0, 2)
	for _, id := range []string{TeamAID, TeamBID} {
		view, err := r.GetTeamView(id)
		if err != nil {
			return nil, err
		}
		if view == nil {
			return nil, fmt.Errorf("team %q is missing", id)
		}
		views = append(views, *view)
	}
	return views, nil
}

func (r *teamRepository) GetTeamView(teamID string) (*TeamView, error) {
	var team Team
	err := r.db.First(&team, "id = ?", teamID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	playerIDs, err := r.PlayerIDs(teamID)
	if err != nil {
		return nil, err
	}
	return &TeamView{ID: team.ID, Name: team.Name, PlayerIDs: playerIDs}, nil
}

// ReplaceConfig applies a whole-config update: both team names and both
// membership lists are replaced in a single transaction. A player appearing
// on both sides rejects the whole update.
func (r *teamRepository) ReplaceConfig(views []TeamView) error {
	seen := make(map[uint]string)
	for _, v := range views {
		for _, pid := range v.PlayerIDs {
			if other, dup := seen[pid]; dup && other != v.ID {
				return fmt.Errorf("player %d assigned to both teams", pid)
			}
			seen[pid] = v.ID
		}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, v := range views {
			if err := tx.Model(&Team{}).Where("id = ?", v.ID).
				Update("name", v.Name).Error; err != nil {
				return err
			}
			if err := tx.Where("team_id = ?", v.ID).Delete(&TeamMember{}).Error; err != nil {
				return err
			}
			for _, pid := range v.PlayerIDs {
				member := TeamMember{TeamID: v.ID, PlayerID: pid}
				if err := tx.Create(&member).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *teamRepository) PlayerIDs(teamID string) ([]uint, error) {
	var members []TeamMember
	err := r.db.Where("team_id = ?", teamID).Order("id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.PlayerID)
	}
	return ids, nil
}

func (r *teamRepository) RemovePlayerEverywhere(playerID uint) error {
	return r.db.Where("player_id = ?", playerID).Delete(&TeamMember{}).Error
}

func (r *teamRepository) ResetMemberships() error {
	return r.db.Where("1 = 1").Delete(&TeamMember{}).Error
}

// ResetToDefaults restores the default team names and clears membership.
func (r *teamRepository) ResetToDefaults() error {
	names := map[string]string{TeamAID: "Team A", TeamBID: "Team B"}
	for id, name := range names {
		if err := r.db.Model(&Team{}).Where("id = ?", id).
			Update("name", name).Error; err != nil {
			return err
		}
	}
	return r.ResetMemberships()
}

func (r *teamRepository) Rosters() (map[string]engine.Roster, error) {
	views, err := r.GetConfig()
	if err != nil {
		return nil, err
	}
	rosters := make(map[string]engine.Roster, len(views))
	for _, v := range views {
		rosters[v.ID] = engine.Roster{ID: v.ID, Name: v.Name, Size: len(v.PlayerIDs)}
	}
	return rosters, nil
}

// CountExistingPlayers reports how many of the given IDs are real roster
// rows. Queried by table name to keep this package free of the player model.
func (r *teamRepository) CountExistingPlayers(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Table("players").
		Where("id IN ? AND deleted_at IS NULL", ids).
		Count(&count).Error
	return count, err
}

func (r *teamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(NewTeamRepository(tx))
	})
}
