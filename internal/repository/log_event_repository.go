package repository

import (
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
)

type LogEventRepository struct {
	db *gorm.DB
}

func NewLogEventRepository(db *gorm.DB) *LogEventRepository {
	return &LogEventRepository{
		db: db,
	}
}

// Create appends one audit row. There is no update or delete path.
func (r *LogEventRepository) Create(event *models.LogEvent) error {
	return r.db.Create(event).Error
}

func (r *LogEventRepository) GetAll() ([]models.LogEvent, error) {
	var events []models.LogEvent
	err := r.db.Order("created_at DESC").Find(&events).Error
	return events, err
}
