package history

import (
	"errors"

	"gorm.io/gorm"
)

// HistoryRepository defines the interface for archived match records.
type HistoryRepository interface {
	Create(record *Record) error
	GetAll() ([]Record, error)
	GetByID(id uint) (*Record, error)
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new instance of HistoryRepository.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(record *Record) error {
	return r.db.Create(record).Error
}

func (r *historyRepository) GetAll() ([]Record, error) {
	var records []Record
	err := r.db.Order("archived_at DESC").Find(&records).Error
	return records, err
}

func (r *historyRepository) GetByID(id uint) (*Record, error) {
	var record Record
	err := r.db.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
