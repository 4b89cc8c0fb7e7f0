package repository

import (
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
)

type FamilyRepository struct {
	CatalogRepository[models.Family]
}

func NewFamilyRepository(db *gorm.DB) *FamilyRepository {
	return &FamilyRepository{
		CatalogRepository: NewCatalogRepository[models.Family](db, "family", "name"),
	}
}

func (r *FamilyRepository) Create(family *models.Family) error {
	return r.db.Create(family).Error
}

func (r *FamilyRepository) Update(id uint, req models.UpdateFamilyRequest) (*models.Family, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	return r.updateFields(id, fields)
}

func (r *FamilyRepository) GetByHerbariumType(herbariumTypeID uint, vis Visibility) ([]models.Family, error) {
	var families []models.Family
	q := r.db.Table("family").
		Where("herbarium_type_id = ? AND is_deleted = false", herbariumTypeID)
	if vis == VisibilityPublic {
		q = q.Where("status = true")
	}
	err := q.Order("name").Find(&families).Error
	return families, err
}
