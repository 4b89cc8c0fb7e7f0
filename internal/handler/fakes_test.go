package handler_test

import (
	"errors"
	"io"
	"sort"

	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/internal/repository"
)

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*models.User{}}
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.nextID++
	user.ID = s.nextID
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) EmailExists(email string) (bool, error) {
	_, err := s.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (s *fakeUserStore) update(id uint, fn func(*models.User)) error {
	user, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	fn(user)
	return nil
}

func (s *fakeUserStore) UpdatePassword(id uint, hashed string) error {
	return s.update(id, func(u *models.User) { u.Password = hashed })
}

func (s *fakeUserStore) UpdateToken(id uint, token string) error {
	return s.update(id, func(u *models.User) { u.Token = token })
}

func (s *fakeUserStore) ClearToken(id uint) error {
	return s.update(id, func(u *models.User) { u.Token = "" })
}

func (s *fakeUserStore) UpdateForgotPasswordCode(id uint, code string) error {
	return s.update(id, func(u *models.User) { u.ForgotPasswordCode = code })
}

func (s *fakeUserStore) ClearForgotPasswordCode(id uint) error {
	return s.update(id, func(u *models.User) { u.ForgotPasswordCode = "" })
}

type fakeEmailSender struct {
	sentCodes []string
}

func (s *fakeEmailSender) SendForgotPasswordCode(to, code string) error {
	s.sentCodes = append(s.sentCodes, code)
	return nil
}

type fakeLogStore struct {
	events []models.LogEvent
}

func (s *fakeLogStore) Create(event *models.LogEvent) error {
	event.ID = uint(len(s.events) + 1)
	s.events = append(s.events, *event)
	return nil
}

func (s *fakeLogStore) GetAll() ([]models.LogEvent, error) {
	return s.events, nil
}

type fakeHerbariumTypeStore struct {
	items  map[uint]*models.HerbariumType
	nextID uint
}

func newFakeHerbariumTypeStore() *fakeHerbariumTypeStore {
	return &fakeHerbariumTypeStore{items: map[uint]*models.HerbariumType{}}
}

func (s *fakeHerbariumTypeStore) Create(ht *models.HerbariumType) error {
	s.nextID++
	ht.ID = s.nextID
	clone := *ht
	s.items[ht.ID] = &clone
	return nil
}

func (s *fakeHerbariumTypeStore) GetAll(vis repository.Visibility) ([]models.HerbariumType, error) {
	var out []models.HerbariumType
	for _, ht := range s.items {
		if ht.IsDeleted {
			continue
		}
		if vis == repository.VisibilityPublic && !ht.Status {
			continue
		}
		out = append(out, *ht)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeHerbariumTypeStore) GetByID(id uint, vis repository.Visibility) (*models.HerbariumType, error) {
	ht, ok := s.items[id]
	if !ok || ht.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	if vis == repository.VisibilityPublic && !ht.Status {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *ht
	return &clone, nil
}

func (s *fakeHerbariumTypeStore) Update(id uint, req models.UpdateHerbariumTypeRequest) (*models.HerbariumType, error) {
	ht, ok := s.items[id]
	if !ok || ht.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	if req.Name != nil {
		ht.Name = *req.Name
	}
	if req.Description != nil {
		ht.Description = *req.Description
	}
	clone := *ht
	return &clone, nil
}

func (s *fakeHerbariumTypeStore) ToggleStatus(id uint) (*models.HerbariumType, error) {
	ht, ok := s.items[id]
	if !ok || ht.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	ht.Status = !ht.Status
	clone := *ht
	return &clone, nil
}

func (s *fakeHerbariumTypeStore) SoftDelete(id uint) (*models.HerbariumType, error) {
	ht, ok := s.items[id]
	if !ok || ht.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	ht.IsDeleted = true
	clone := *ht
	return &clone, nil
}

type fakePlantStore struct {
	items  map[uint]*models.Plant
	nextID uint
}

func newFakePlantStore() *fakePlantStore {
	return &fakePlantStore{items: map[uint]*models.Plant{}}
}

func (s *fakePlantStore) Create(plant *models.Plant) error {
	s.nextID++
	plant.ID = s.nextID
	clone := *plant
	s.items[plant.ID] = &clone
	return nil
}

func (s *fakePlantStore) GetByID(id uint, vis repository.Visibility) (*models.Plant, error) {
	plant, ok := s.items[id]
	if !ok || plant.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	if vis == repository.VisibilityPublic && !plant.Status {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *plant
	return &clone, nil
}

func (s *fakePlantStore) GetAllWithTaxonomy(vis repository.Visibility) ([]models.PlantWithTaxonomy, error) {
	return nil, nil
}

func (s *fakePlantStore) GetByTaxonomy(herbariumTypeID, familyID uint, vis repository.Visibility) ([]models.PlantWithTaxonomy, error) {
	return nil, nil
}

func (s *fakePlantStore) Update(id uint, req models.UpdatePlantRequest) (*models.Plant, error) {
	plant, ok := s.items[id]
	if !ok || plant.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *plant
	return &clone, nil
}

func (s *fakePlantStore) ToggleStatus(id uint) (*models.Plant, error) {
	plant, ok := s.items[id]
	if !ok || plant.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	plant.Status = !plant.Status
	clone := *plant
	return &clone, nil
}

func (s *fakePlantStore) SoftDelete(id uint) (*models.Plant, error) {
	plant, ok := s.items[id]
	if !ok || plant.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	plant.IsDeleted = true
	clone := *plant
	return &clone, nil
}

type fakePlantImageStore struct {
	items  map[uint]*models.PlantImage
	plants *fakePlantStore
	nextID uint
}

func newFakePlantImageStore(plants *fakePlantStore) *fakePlantImageStore {
	return &fakePlantImageStore{items: map[uint]*models.PlantImage{}, plants: plants}
}

func (s *fakePlantImageStore) liveCount(plantID uint) int {
	count := 0
	for _, img := range s.items {
		if img.PlantID == plantID && !img.IsDeleted {
			count++
		}
	}
	return count
}

func (s *fakePlantImageStore) CreateCapped(image *models.PlantImage) error {
	if s.liveCount(image.PlantID) >= models.MaxLivePlantImages {
		return repository.ErrImageLimitReached
	}
	s.nextID++
	image.ID = s.nextID
	image.Status = true
	clone := *image
	s.items[image.ID] = &clone
	return nil
}

func (s *fakePlantImageStore) GetByID(id uint, vis repository.Visibility) (*models.PlantImage, error) {
	img, ok := s.items[id]
	if !ok || img.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	if vis == repository.VisibilityPublic && !img.Status {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *img
	return &clone, nil
}

func (s *fakePlantImageStore) GetAllWithPlant(vis repository.Visibility) ([]models.PlantImageWithPlant, error) {
	var out []models.PlantImageWithPlant
	for _, img := range s.items {
		if img.IsDeleted {
			continue
		}
		if vis == repository.VisibilityPublic && !img.Status {
			continue
		}
		plant, err := s.plants.GetByID(img.PlantID, vis)
		if err != nil {
			continue
		}
		out = append(out, models.PlantImageWithPlant{
			PlantImage:     *img,
			CommonName:     plant.CommonName,
			ScientificName: plant.ScientificName,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakePlantImageStore) GetByPlantID(plantID uint, vis repository.Visibility) ([]models.PlantImage, error) {
	var out []models.PlantImage
	for _, img := range s.items {
		if img.PlantID != plantID || img.IsDeleted {
			continue
		}
		if vis == repository.VisibilityPublic && !img.Status {
			continue
		}
		out = append(out, *img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakePlantImageStore) Update(id uint, imageURL *string, description *string) (*models.PlantImage, error) {
	img, ok := s.items[id]
	if !ok || img.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	if imageURL != nil {
		img.ImageURL = *imageURL
	}
	if description != nil {
		img.Description = *description
	}
	clone := *img
	return &clone, nil
}

func (s *fakePlantImageStore) ToggleStatus(id uint) (*models.PlantImage, error) {
	img, ok := s.items[id]
	if !ok || img.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	img.Status = !img.Status
	clone := *img
	return &clone, nil
}

func (s *fakePlantImageStore) SoftDelete(id uint) (*models.PlantImage, error) {
	img, ok := s.items[id]
	if !ok || img.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	img.IsDeleted = true
	clone := *img
	return &clone, nil
}

type fakeStorage struct {
	saved    []string
	archived []string
}

func (s *fakeStorage) Save(filename string, src io.Reader) (string, error) {
	url := "/uploads/plants/" + filename
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeStorage) Replace(oldURL, filename string, src io.Reader) (string, error) {
	s.archived = append(s.archived, oldURL)
	return s.Save(filename, src)
}
