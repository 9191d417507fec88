package player

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gullyscore/api/internal/engine"
)

// PlayerRepository defines the interface for player data operations.
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayersByIDs(ids []uint) ([]Player, error)
	FindPlayerByName(name string) (*Player, error)
	GetAllPlayers() ([]Player, error)
	UpdatePlayer(player *Player) error
	DeletePlayer(id uint) error
	ResetAllStats() error
	DeleteAllPlayers() error

	// Scoring deltas. Both are plain column increments so a delivery's
	// batting and bowling halves can run inside one transaction.
	ApplyBattingDelta(playerID uint, d engine.BattingDelta) error
	ApplyBowlingDelta(playerID uint, d engine.BowlingDelta) error

	WithTransaction(txFunc func(PlayerRepository) error) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	err := r.db.First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetPlayersByIDs(ids []uint) ([]Player, error) {
	var players []Player
	if len(ids) == 0 {
		return players, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&players).Error
	return players, err
}

// FindPlayerByName matches case-insensitively; roster names are unique
// regardless of case.
func (r *playerRepository) FindPlayerByName(name string) (*Player, error) {
	var player Player
	err := r.db.Where("name ILIKE ?", name).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetAllPlayers() ([]Player, error) {
	var players []Player
	err := r.db.Order("created_at ASC").Find(&players).Error
	return players, err
}

func (r *playerRepository) UpdatePlayer(player *Player) error {
	return r.db.Save(player).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Unscoped().Delete(&Player{}, id).Error
}

var zeroStats = map[string]interface{}{
	"runs":          0,
	"balls":         0,
	"fours":         0,
	"sixes":         0,
	"is_out":        false,
	"wickets":       0,
	"overs_bowled":  0,
	"runs_conceded": 0,
}

func (r *playerRepository) ResetAllStats() error {
	return r.db.Model(&Player{}).Where("1 = 1").Updates(zeroStats).Error
}

func (r *playerRepository) DeleteAllPlayers() error {
	return r.db.Unscoped().Where("1 = 1").Delete(&Player{}).Error
}

func (r *playerRepository) ApplyBattingDelta(playerID uint, d engine.BattingDelta) error {
	updates := map[string]interface{}{
		"runs":  gorm.Expr("runs + ?", d.Runs),
		"balls": gorm.Expr("balls + ?", d.Balls),
		"fours": gorm.Expr("fours + ?", d.Fours),
		"sixes": gorm.Expr("sixes + ?", d.Sixes),
	}
	if d.Out != nil {
		updates["is_out"] = *d.Out
	}
	return r.db.Model(&Player{}).Where("id = ?", playerID).Updates(updates).Error
}

func (r *playerRepository) ApplyBowlingDelta(playerID uint, d engine.BowlingDelta) error {
	return r.db.Model(&Player{}).Where("id = ?", playerID).Updates(map[string]interface{}{
		"overs_bowled":  gorm.Expr("overs_bowled + ?", d.BallsBowled),
		"runs_conceded": gorm.Expr("runs_conceded + ?", d.RunsConceded),
		"wickets":       gorm.Expr("wickets + ?", d.Wickets),
	}).Error
}

func (r *playerRepository) WithTransaction(txFunc func(PlayerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(NewPlayerRepository(tx))
	})
}
