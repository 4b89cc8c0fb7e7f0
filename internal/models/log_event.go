package models

import (
	"time"
)

// LogEvent is an append-only audit record. Rows are never updated or
// deleted.
type LogEvent struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null"`
	HerbariumTypeID *uint     `json:"herbarium_type_id,omitempty"`
	FamilyID        *uint     `json:"family_id,omitempty"`
	PlantID         *uint     `json:"plant_id,omitempty"`
	PlantImgID      *uint     `json:"plant_img_id,omitempty"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}

func (LogEvent) TableName() string {
	return "log_event"
}
