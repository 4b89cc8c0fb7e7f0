package repository

import (
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UpdatePassword(userID uint, hashedPassword string) error {
	return r.update(userID, map[string]interface{}{"password": hashedPassword})
}

// UpdateToken overwrites the user's current session token. The previous
// token, if any, stops being accepted from that moment.
func (r *UserRepository) UpdateToken(userID uint, token string) error {
	return r.update(userID, map[string]interface{}{"token": token})
}

func (r *UserRepository) ClearToken(userID uint) error {
	return r.update(userID, map[string]interface{}{"token": ""})
}

func (r *UserRepository) UpdateForgotPasswordCode(userID uint, code string) error {
	return r.update(userID, map[string]interface{}{"forgot_password_code": code})
}

func (r *UserRepository) ClearForgotPasswordCode(userID uint) error {
	return r.update(userID, map[string]interface{}{"forgot_password_code": ""})
}

func (r *UserRepository) update(userID uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
