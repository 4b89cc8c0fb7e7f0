package service

import (
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/repository"
	"github.com/herbarium/herbarium-backend/pkg/storage"
)

type PlantImageService struct {
	images  PlantImageStore
	plants  PlantStore
	storage storage.StorageService
	audit   *auditLogger
}

func NewPlantImageService(
	images PlantImageStore,
	plants PlantStore,
	fileStorage storage.StorageService,
	logs LogEventStore,
	logger *zap.Logger,
) *PlantImageService {
	return &PlantImageService{
		images:  images,
		plants:  plants,
		storage: fileStorage,
		audit:   newAuditLogger(logs, logger),
	}
}

func (s *PlantImageService) GetAll(vis repository.Visibility) ([]models.PlantImageWithPlant, error) {
	return s.images.GetAllWithPlant(vis)
}

func (s *PlantImageService) GetByPlantID(plantID uint, vis repository.Visibility) ([]models.PlantImage, error) {
	return s.images.GetByPlantID(plantID, vis)
}

// Upload stores the file and inserts the image row. The insert itself
// enforces the per-plant cap, so a fourth live image fails even under
// concurrent uploads.
func (s *PlantImageService) Upload(plantID uint, file *multipart.FileHeader, description string, actorID uint) (*models.PlantImage, error) {
	if _, err := s.plants.GetByID(plantID, repository.VisibilityAdmin); err != nil {
		return nil, notFoundOr(err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	imageURL, err := s.storage.Save(file.Filename, src)
	if err != nil {
		return nil, err
	}

	image := &models.PlantImage{
		PlantID:     plantID,
		ImageURL:    imageURL,
		Description: description,
	}
	if err := s.images.CreateCapped(image); err != nil {
		if errors.Is(err, repository.ErrImageLimitReached) {
			return nil, ErrImageLimitReached
		}
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		PlantID:     &plantID,
		PlantImgID:  &image.ID,
		Description: fmt.Sprintf("Uploaded image for plant ID: %d", plantID),
	})
	return image, nil
}

// Replace swaps the stored file for a new one. The previous file is
// archived, not deleted, and the audit entry records both locations.
func (s *PlantImageService) Replace(id uint, file *multipart.FileHeader, description *string, actorID uint) (*models.PlantImage, error) {
	current, err := s.images.GetByID(id, repository.VisibilityAdmin)
	if err != nil {
		return nil, notFoundOr(err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	imageURL, err := s.storage.Replace(current.ImageURL, file.Filename, src)
	if err != nil {
		return nil, err
	}

	image, err := s.images.Update(id, &imageURL, description)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:     actorID,
		PlantID:    &image.PlantID,
		PlantImgID: &image.ID,
		Description: fmt.Sprintf(
			"Updated image for plant ID: %d. Old image: %s moved to oldPlants. New image: %s",
			image.PlantID, current.ImageURL, image.ImageURL,
		),
	})
	return image, nil
}

func (s *PlantImageService) ToggleStatus(id uint, actorID uint) (*models.PlantImage, error) {
	image, err := s.images.ToggleStatus(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	action := "deactivated"
	if image.Status {
		action = "activated"
	}
	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		PlantID:     &image.PlantID,
		PlantImgID:  &image.ID,
		Description: fmt.Sprintf("%s image for plant ID: %d", action, image.PlantID),
	})
	return image, nil
}

func (s *PlantImageService) SoftDelete(id uint, actorID uint) (*models.PlantImage, error) {
	image, err := s.images.SoftDelete(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		PlantID:     &image.PlantID,
		PlantImgID:  &image.ID,
		Description: fmt.Sprintf("Soft deleted image for plant ID: %d", image.PlantID),
	})
	return image, nil
}
