package models

type Family struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	HerbariumTypeID uint   `json:"herbarium_type_id" gorm:"not null"`
	Name            string `json:"name" gorm:"size:100;not null"`
	Description     string `json:"description"`
	Status          bool   `json:"status" gorm:"default:true"`
	IsDeleted       bool   `json:"is_deleted" gorm:"default:false"`
}

func (Family) TableName() string {
	return "family"
}

type CreateFamilyRequest struct {
	HerbariumTypeID uint   `json:"herbarium_type_id" validate:"required"`
	Name            string `json:"name" validate:"required,max=100"`
	Description     string `json:"description"`
}

type UpdateFamilyRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}
