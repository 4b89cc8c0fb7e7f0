package models

import (
	"time"
)

// MaxLivePlantImages is the cap on non-deleted images per plant, and
// also the most files one upload request may carry.
const MaxLivePlantImages = 3

// MaxImageSize caps an uploaded file at 10MB.
const MaxImageSize = 10 * 1024 * 1024

type PlantImage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PlantID     uint      `json:"plant_id" gorm:"not null"`
	ImageURL    string    `json:"image_url" gorm:"not null"`
	Description string    `json:"description"`
	Status      bool      `json:"status" gorm:"default:true"`
	IsDeleted   bool      `json:"is_deleted" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PlantImage) TableName() string {
	return "plant_img"
}

// PlantImageWithPlant is an image row joined with its plant's names, as
// returned by the list-all endpoint.
type PlantImageWithPlant struct {
	PlantImage
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
}

// PlantImageFile is the multipart metadata validated before a file is
// stored.
type PlantImageFile struct {
	ContentType string `validate:"required,supported_image"`
	Size        int64  `validate:"gt=0,max=10485760"`
}

type UpdatePlantImageRequest struct {
	Description *string `json:"description"`
}
