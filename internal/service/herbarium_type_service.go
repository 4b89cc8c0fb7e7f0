package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/repository"
)

type HerbariumTypeService struct {
	herbariumTypes HerbariumTypeStore
	audit          *auditLogger
}

func NewHerbariumTypeService(herbariumTypes HerbariumTypeStore, logs LogEventStore, logger *zap.Logger) *HerbariumTypeService {
	return &HerbariumTypeService{
		herbariumTypes: herbariumTypes,
		audit:          newAuditLogger(logs, logger),
	}
}

func (s *HerbariumTypeService) GetAll(vis repository.Visibility) ([]models.HerbariumType, error) {
	return s.herbariumTypes.GetAll(vis)
}

func (s *HerbariumTypeService) GetByID(id uint, vis repository.Visibility) (*models.HerbariumType, error) {
	herbariumType, err := s.herbariumTypes.GetByID(id, vis)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return herbariumType, nil
}

func (s *HerbariumTypeService) Create(req models.CreateHerbariumTypeRequest, actorID uint) (*models.HerbariumType, error) {
	herbariumType := &models.HerbariumType{
		Name:        req.Name,
		Description: req.Description,
		Status:      true,
	}
	if err := s.herbariumTypes.Create(herbariumType); err != nil {
		return nil, err
	}

	s.audit.record(&models.LogEvent{
		UserID:          actorID,
		HerbariumTypeID: &herbariumType.ID,
		Description:     fmt.Sprintf("Created herbarium type: %s", herbariumType.Name),
	})
	return herbariumType, nil
}

func (s *HerbariumTypeService) Update(id uint, req models.UpdateHerbariumTypeRequest, actorID uint) (*models.HerbariumType, error) {
	herbariumType, err := s.herbariumTypes.Update(id, req)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:          actorID,
		HerbariumTypeID: &herbariumType.ID,
		Description:     fmt.Sprintf("Updated herbarium type: %s", herbariumType.Name),
	})
	return herbariumType, nil
}

// ToggleStatus flips the status flag; the database trigger pushes the new
// value down to the families (and, through them, the plants).
func (s *HerbariumTypeService) ToggleStatus(id uint, actorID uint) (*models.HerbariumType, error) {
	herbariumType, err := s.herbariumTypes.ToggleStatus(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	action := "deactivated"
	if herbariumType.Status {
		action = "activated"
	}
	s.audit.record(&models.LogEvent{
		UserID:          actorID,
		HerbariumTypeID: &herbariumType.ID,
		Description:     fmt.Sprintf("%s herbarium type: %s", action, herbariumType.Name),
	})
	return herbariumType, nil
}

func (s *HerbariumTypeService) SoftDelete(id uint, actorID uint) (*models.HerbariumType, error) {
	herbariumType, err := s.herbariumTypes.SoftDelete(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	s.audit.record(&models.LogEvent{
		UserID:          actorID,
		HerbariumTypeID: &herbariumType.ID,
		Description:     fmt.Sprintf("Soft deleted herbarium type: %s", herbariumType.Name),
	})
	return herbariumType, nil
}

// notFoundOr translates the repository's no-rows error into the business
// not-found; anything else passes through as an infrastructure fault.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
