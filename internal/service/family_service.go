package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/repository"
)

type FamilyService struct {
	families       FamilyStore
	herbariumTypes HerbariumTypeStore
	audit          *auditLogger
}

func NewFamilyService(families FamilyStore, herbariumTypes HerbariumTypeStore, logs LogEventStore, logger *zap.Logger) *FamilyService {
	return &FamilyService{
		families:       families,
		herbariumTypes: herbariumTypes,
		audit:          newAuditLogger(logs, logger),
	}
}

func (s *FamilyService) GetAll(vis repository.Visibility) ([]models.Family, error) {
	return s.families.GetAll(vis)
}

func (s *FamilyService) GetByID(id uint, vis repository.Visibility) (*models.Family, error) {
	family, err := s.families.GetByID(id, vis)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return family, nil
}

func (s *FamilyService) GetByHerbariumType(herbariumTypeID uint, vis repository.Visibility) ([]models.Family, error) {
	if _, err := s.herbariumTypes.GetByID(herbariumTypeID, vis); err != nil {
		return nil, notFoundOr(err)
	}
	return s.families.GetByHerbariumType(herbariumTypeID, vis)
}

func (s *FamilyService) Create(req models.CreateFamilyRequest, actorID uint) (*models.Family, error) {
	// The owning herbarium type must be live.
	if _, err := s.herbariumTypes.GetByID(req.HerbariumTypeID, repository.VisibilityAdmin); err != nil {
		return nil, notFoundOr(err)
	}

	family := &models.Family{
		HerbariumTypeID: req.HerbariumTypeID,
		Name:            req.Name,
		Description:     req.Description,
		Status:          true,
	}
	if err := s.families.Create(family); err != nil {
		return nil, err
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		FamilyID:    &family.ID,
		Description: fmt.Sprintf("Created family: %s", family.Name),
	})
	return family, nil
}

func (s *FamilyService) Update(id uint, req models.UpdateFamilyRequest, actorID uint) (*models.Family, error) {
	family, err := s.families.Update(id, req)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		FamilyID:    &family.ID,
		Description: fmt.Sprintf("Updated family: %s", family.Name),
	})
	return family, nil
}

// ToggleStatus flips the status flag; the family trigger pushes the new
// value down to the plants.
func (s *FamilyService) ToggleStatus(id uint, actorID uint) (*models.Family, error) {
	family, err := s.families.ToggleStatus(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	action := "deactivated"
	if family.Status {
		action = "activated"
	}
	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		FamilyID:    &family.ID,
		Description: fmt.Sprintf("%s family: %s", action, family.Name),
	})
	return family, nil
}

func (s *FamilyService) SoftDelete(id uint, actorID uint) (*models.Family, error) {
	family, err := s.families.SoftDelete(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:      actorID,
		FamilyID:    &family.ID,
		Description: fmt.Sprintf("Soft deleted family: %s", family.Name),
	})
	return family, nil
}
