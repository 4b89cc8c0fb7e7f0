package models

type HerbariumType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description"`
	Status      bool   `json:"status" gorm:"default:true"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
}

func (HerbariumType) TableName() string {
	return "herbarium_type"
}

type CreateHerbariumTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdateHerbariumTypeRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}
