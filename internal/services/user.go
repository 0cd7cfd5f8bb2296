package services

import (
	"errors"

	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// EmailExists reports whether an email address is already registered. Used by
// the public availability check during registration.
func (s *UserService) EmailExists(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByEmail returns the short user record for an email, for resolving
// member ids when inviting users to a board.
func (s *UserService) FindByEmail(email string) (*UserShort, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("no user found with this email address")
		}
		return nil, err
	}
	return newUserShort(&user), nil
}
