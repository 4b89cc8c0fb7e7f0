package repository

import (
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
)

type HerbariumTypeRepository struct {
	CatalogRepository[models.HerbariumType]
}

func NewHerbariumTypeRepository(db *gorm.DB) *HerbariumTypeRepository {
	return &HerbariumTypeRepository{
		CatalogRepository: NewCatalogRepository[models.HerbariumType](db, "herbarium_type", "name"),
	}
}

func (r *HerbariumTypeRepository) Create(herbariumType *models.HerbariumType) error {
	return r.db.Create(herbariumType).Error
}

func (r *HerbariumTypeRepository) Update(id uint, req models.UpdateHerbariumTypeRequest) (*models.HerbariumType, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	return r.updateFields(id, fields)
}
