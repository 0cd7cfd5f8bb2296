package services

import (
	"errors"
	"time"

	"github.com/kanbanhq/backend/internal/config"
	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/internal/utils"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type RegistrationRequest struct {
	Fullname         string `json:"fullname" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	RepeatedPassword string `json:"repeated_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is the payload returned by registration and login.
type AuthResult struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

// Register creates a new account and issues a token. No user record is
// created when validation fails.
func (s *AuthService) Register(req *RegistrationRequest) (*AuthResult, error) {
	if req.Password != req.RepeatedPassword {
		return nil, response.NewValidation("passwords do not match",
			map[string]string{"repeated_password": "does not match password"})
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewValidation("email is already in use",
			map[string]string{"email": "already registered"})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       req.Email,
		DisplayName: req.Fullname,
		Password:    hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return s.issue(&user)
}

// Login authenticates by email and password and issues a token. All failure
// modes surface the same invalid-credentials error.
func (s *AuthService) Login(req *LoginRequest) (*AuthResult, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if !user.IsActive || !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("invalid credentials")
	}

	now := time.Now()
	user.LastLogin = &now
	s.db.Save(&user)

	return s.issue(&user)
}

// GetUserByID returns a user record for the current-user endpoint.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:    token,
		UserID:   user.ID,
		Email:    user.Email,
		Fullname: user.DisplayName,
	}, nil
}
