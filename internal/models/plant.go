package models

type Plant struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	FamilyID       uint   `json:"family_id" gorm:"not null"`
	CommonName     string `json:"common_name" gorm:"size:100"`
	ScientificName string `json:"scientific_name" gorm:"size:100;not null"`
	Quantity       int    `json:"quantity" gorm:"default:0"`
	Description    string `json:"description"`
	Status         bool   `json:"status" gorm:"default:true"`
	IsDeleted      bool   `json:"is_deleted" gorm:"default:false"`
	Refs           string `json:"refs" gorm:"size:1000"`
}

func (Plant) TableName() string {
	return "plant"
}

// PlantWithTaxonomy is a plant row joined with its family and herbarium
// type names, as returned by the list endpoints.
type PlantWithTaxonomy struct {
	Plant
	FamilyName    string `json:"family_name"`
	HerbariumName string `json:"herbarium_name"`
}

type CreatePlantRequest struct {
	FamilyID       uint   `json:"family_id" validate:"required"`
	CommonName     string `json:"common_name" validate:"max=100"`
	ScientificName string `json:"scientific_name" validate:"required,max=100"`
	Quantity       int    `json:"quantity" validate:"gte=0"`
	Description    string `json:"description"`
	Refs           string `json:"refs" validate:"max=1000"`
}

type UpdatePlantRequest struct {
	CommonName     *string `json:"common_name" validate:"omitempty,max=100"`
	ScientificName *string `json:"scientific_name" validate:"omitempty,max=100"`
	Quantity       *int    `json:"quantity" validate:"omitempty,gte=0"`
	Description    *string `json:"description"`
	Refs           *string `json:"refs" validate:"omitempty,max=1000"`
}
