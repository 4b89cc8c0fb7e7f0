package models

import (
	"time"
)

type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;unique;not null"`
}

func (Role) TableName() string {
	return "role"
}

type User struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:100;not null"`
	Email              string    `json:"email" gorm:"size:100;unique;not null"`
	Password           string    `json:"-" gorm:"not null"`
	RoleID             uint      `json:"role_id" gorm:"not null"`
	Token              string    `json:"-" gorm:"size:255"`
	ForgotPasswordCode string    `json:"-" gorm:"size:6"`
	CreatedAt          time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile is the public view of a user, returned by auth endpoints.
type UserProfile struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    uint      `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
	}
}
