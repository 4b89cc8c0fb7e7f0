package repository

import (
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
)

type PlantRepository struct {
	CatalogRepository[models.Plant]
}

func NewPlantRepository(db *gorm.DB) *PlantRepository {
	return &PlantRepository{
		CatalogRepository: NewCatalogRepository[models.Plant](db, "plant", "common_name"),
	}
}

func (r *PlantRepository) Create(plant *models.Plant) error {
	return r.db.Create(plant).Error
}

func (r *PlantRepository) Update(id uint, req models.UpdatePlantRequest) (*models.Plant, error) {
	fields := map[string]interface{}{}
	if req.CommonName != nil {
		fields["common_name"] = *req.CommonName
	}
	if req.ScientificName != nil {
		fields["scientific_name"] = *req.ScientificName
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Refs != nil {
		fields["refs"] = *req.Refs
	}
	return r.updateFields(id, fields)
}

// GetAllWithTaxonomy lists plants joined with their family and herbarium
// type names, ordered by common name.
func (r *PlantRepository) GetAllWithTaxonomy(vis Visibility) ([]models.PlantWithTaxonomy, error) {
	var plants []models.PlantWithTaxonomy
	q := r.taxonomyQuery(vis)
	err := q.Find(&plants).Error
	return plants, err
}

// GetByTaxonomy lists plants under one (herbarium type, family) pair.
func (r *PlantRepository) GetByTaxonomy(herbariumTypeID, familyID uint, vis Visibility) ([]models.PlantWithTaxonomy, error) {
	var plants []models.PlantWithTaxonomy
	q := r.taxonomyQuery(vis).
		Where("family.herbarium_type_id = ? AND family.id = ?", herbariumTypeID, familyID)
	err := q.Find(&plants).Error
	return plants, err
}

func (r *PlantRepository) taxonomyQuery(vis Visibility) *gorm.DB {
	q := r.db.Table("plant").
		Select("plant.*, family.name AS family_name, herbarium_type.name AS herbarium_name").
		Joins("INNER JOIN family ON family.id = plant.family_id").
		Joins("INNER JOIN herbarium_type ON herbarium_type.id = family.herbarium_type_id").
		Where("plant.is_deleted = false")
	if vis == VisibilityPublic {
		q = q.Where("plant.status = true")
	}
	return q.Order("plant.common_name")
}
