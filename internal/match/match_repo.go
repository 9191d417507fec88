package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines the interface for the singleton match row.
type MatchRepository interface {
	// GetCurrent returns the live match, creating the default setup row on
	// first access.
	GetCurrent() (*Match, error)
	Save(m *Match) error
	ResetToDefault() (*Match, error)

	WithTransaction(txFunc func(MatchRepository) error) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetCurrent() (*Match, error) {
	var m Match
	err := r.db.First(&m, "id = ?", CurrentMatchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := NewDefaultMatch()
			if createErr := r.db.Create(def).Error; createErr != nil {
				return nil, createErr
			}
			return def, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) Save(m *Match) error {
	m.ID = CurrentMatchID
	return r.db.Save(m).Error
}

func (r *matchRepository) ResetToDefault() (*Match, error) {
	m, err := r.GetCurrent()
	if err != nil {
		return nil, err
	}
	state := m.EngineState()
	state.Reset()
	m.ApplyEngineState(state)
	if err := r.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *matchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(NewMatchRepository(tx))
	})
}
