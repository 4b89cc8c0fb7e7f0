package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
)

// ErrImageLimitReached is returned when a plant already holds the maximum
// number of live images.
var ErrImageLimitReached = errors.New("plant image limit reached")

type PlantImageRepository struct {
	CatalogRepository[models.PlantImage]
}

func NewPlantImageRepository(db *gorm.DB) *PlantImageRepository {
	return &PlantImageRepository{
		CatalogRepository: NewCatalogRepository[models.PlantImage](db, "plant_img", "created_at DESC"),
	}
}

// CreateCapped inserts the image only while the plant has fewer than
// MaxLivePlantImages live rows. The parent plant row is locked for the
// transaction, so concurrent uploads serialize on the count instead of
// racing it under READ COMMITTED snapshots.
func (r *PlantImageRepository) CreateCapped(image *models.PlantImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var plantID uint
		locked := tx.Raw(
			"SELECT id FROM plant WHERE id = ? AND is_deleted = false FOR UPDATE",
			image.PlantID,
		).Scan(&plantID)
		if locked.Error != nil {
			return locked.Error
		}
		if locked.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var live int64
		err := tx.Table("plant_img").
			Where("plant_id = ? AND is_deleted = false", image.PlantID).
			Count(&live).Error
		if err != nil {
			return err
		}
		if live >= models.MaxLivePlantImages {
			return ErrImageLimitReached
		}

		return tx.Raw(`
			INSERT INTO plant_img (plant_id, image_url, description, status, is_deleted, created_at)
			VALUES (?, ?, ?, true, false, now())
			RETURNING *`,
			image.PlantID, image.ImageURL, image.Description,
		).Scan(image).Error
	})
}

// GetAllWithPlant lists every live image joined with its plant's names.
func (r *PlantImageRepository) GetAllWithPlant(vis Visibility) ([]models.PlantImageWithPlant, error) {
	var images []models.PlantImageWithPlant
	q := r.db.Table("plant_img").
		Select("plant_img.*, plant.common_name AS common_name, plant.scientific_name AS scientific_name").
		Joins("INNER JOIN plant ON plant.id = plant_img.plant_id").
		Where("plant_img.is_deleted = false AND plant.is_deleted = false")
	if vis == VisibilityPublic {
		q = q.Where("plant_img.status = true AND plant.status = true")
	}
	err := q.Order("plant_img.created_at DESC").Find(&images).Error
	return images, err
}

func (r *PlantImageRepository) GetByPlantID(plantID uint, vis Visibility) ([]models.PlantImage, error) {
	var images []models.PlantImage
	q := r.db.Table("plant_img").
		Where("plant_id = ? AND is_deleted = false", plantID)
	if vis == VisibilityPublic {
		q = q.Where("status = true")
	}
	err := q.Order("created_at DESC").Find(&images).Error
	return images, err
}

func (r *PlantImageRepository) Update(id uint, imageURL *string, description *string) (*models.PlantImage, error) {
	fields := map[string]interface{}{}
	if imageURL != nil {
		fields["image_url"] = *imageURL
	}
	if description != nil {
		fields["description"] = *description
	}
	return r.updateFields(id, fields)
}
