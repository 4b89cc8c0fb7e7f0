package service

import (
	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/repository"
	"github.com/herbarium/herbarium-backend/pkg/token"
)

// Store interfaces consumed by the services. The repository package
// provides the production implementations; tests swap in fakes.

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	UpdatePassword(userID uint, hashedPassword string) error
	UpdateToken(userID uint, token string) error
	ClearToken(userID uint) error
	UpdateForgotPasswordCode(userID uint, code string) error
	ClearForgotPasswordCode(userID uint) error
}

type TokenService interface {
	Issue(userID, roleID uint) (string, error)
	Validate(tokenString string) (*token.Claims, error)
}

type EmailSender interface {
	SendForgotPasswordCode(to string, code string) error
}

type LogEventStore interface {
	Create(event *models.LogEvent) error
	GetAll() ([]models.LogEvent, error)
}

type HerbariumTypeStore interface {
	Create(herbariumType *models.HerbariumType) error
	GetAll(vis repository.Visibility) ([]models.HerbariumType, error)
	GetByID(id uint, vis repository.Visibility) (*models.HerbariumType, error)
	Update(id uint, req models.UpdateHerbariumTypeRequest) (*models.HerbariumType, error)
	ToggleStatus(id uint) (*models.HerbariumType, error)
	SoftDelete(id uint) (*models.HerbariumType, error)
}

type FamilyStore interface {
	Create(family *models.Family) error
	GetAll(vis repository.Visibility) ([]models.Family, error)
	GetByID(id uint, vis repository.Visibility) (*models.Family, error)
	GetByHerbariumType(herbariumTypeID uint, vis repository.Visibility) ([]models.Family, error)
	Update(id uint, req models.UpdateFamilyRequest) (*models.Family, error)
	ToggleStatus(id uint) (*models.Family, error)
	SoftDelete(id uint) (*models.Family, error)
}

type PlantStore interface {
	Create(plant *models.Plant) error
	GetByID(id uint, vis repository.Visibility) (*models.Plant, error)
	GetAllWithTaxonomy(vis repository.Visibility) ([]models.PlantWithTaxonomy, error)
	GetByTaxonomy(herbariumTypeID, familyID uint, vis repository.Visibility) ([]models.PlantWithTaxonomy, error)
	Update(id uint, req models.UpdatePlantRequest) (*models.Plant, error)
	ToggleStatus(id uint) (*models.Plant, error)
	SoftDelete(id uint) (*models.Plant, error)
}

type PlantImageStore interface {
	CreateCapped(image *models.PlantImage) error
	GetByID(id uint, vis repository.Visibility) (*models.PlantImage, error)
	GetAllWithPlant(vis repository.Visibility) ([]models.PlantImageWithPlant, error)
	GetByPlantID(plantID uint, vis repository.Visibility) ([]models.PlantImage, error)
	Update(id uint, imageURL *string, description *string) (*models.PlantImage, error)
	ToggleStatus(id uint) (*models.PlantImage, error)
	SoftDelete(id uint) (*models.PlantImage, error)
}
