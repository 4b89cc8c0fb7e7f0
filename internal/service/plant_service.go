package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/repository"
)

type PlantService struct {
	plants   PlantStore
	families FamilyStore
	audit    *auditLogger
}

func NewPlantService(plants PlantStore, families FamilyStore, logs LogEventStore, logger *zap.Logger) *PlantService {
	return &PlantService{
		plants:   plants,
		families: families,
		audit:    newAuditLogger(logs, logger),
	}
}

func (s *PlantService) GetAll(vis repository.Visibility) ([]models.PlantWithTaxonomy, error) {
	return s.plants.GetAllWithTaxonomy(vis)
}

func (s *PlantService) GetByTaxonomy(herbariumTypeID, familyID uint, vis repository.Visibility) ([]models.PlantWithTaxonomy, error) {
	return s.plants.GetByTaxonomy(herbariumTypeID, familyID, vis)
}

func (s *PlantService) GetByID(id uint, vis repository.Visibility) (*models.Plant, error) {
	plant, err := s.plants.GetByID(id, vis)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return plant, nil
}

func (s *PlantService) Create(req models.CreatePlantRequest, actorID uint) (*models.Plant, error) {
	// The owning family must be live.
	if _, err := s.families.GetByID(req.FamilyID, repository.VisibilityAdmin); err != nil {
		return nil, notFoundOr(err)
	}

	plant := &models.Plant{
		FamilyID:       req.FamilyID,
		CommonName:     req.CommonName,
		ScientificName: req.ScientificName,
		Quantity:       req.Quantity,
		Description:    req.Description,
		Refs:           req.Refs,
		Status:         true,
	}
	if err := s.plants.Create(plant); err != nil {
		return nil, err
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		PlantID:     &plant.ID,
		Description: fmt.Sprintf("Created plant: %s", plant.ScientificName),
	})
	return plant, nil
}

func (s *PlantService) Update(id uint, req models.UpdatePlantRequest, actorID uint) (*models.Plant, error) {
	plant, err := s.plants.Update(id, req)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		PlantID:     &plant.ID,
		Description: fmt.Sprintf("Updated plant: %s", plant.ScientificName),
	})
	return plant, nil
}

func (s *PlantService) ToggleStatus(id uint, actorID uint) (*models.Plant, error) {
	plant, err := s.plants.ToggleStatus(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	action := "deactivated"
	if plant.Status {
		action = "activated"
	}
	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		PlantID:     &plant.ID,
		Description: fmt.Sprintf("%s plant: %s", action, plant.ScientificName),
	})
	return plant, nil
}

func (s *PlantService) SoftDelete(id uint, actorID uint) (*models.Plant, error) {
	plant, err := s.plants.SoftDelete(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		PlantID:     &plant.ID,
		Description: fmt.Sprintf("Soft deleted plant: %s", plant.ScientificName),
	})
	return plant, nil
}
