package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kanbanhq/backend/internal/services"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(db),
	}
}

// CheckEmailAvailability reports whether an email is already registered
// GET /api/auth/email-check?email=...
func (h *UserHandler) CheckEmailAvailability(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email parameter is required")
		return
	}

	exists, err := h.userService.EmailExists(email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"exists": exists})
}

// LookupByEmail resolves an email to a short user record, for inviting
// members to a board
// GET /api/email-check?email=...
func (h *UserHandler) LookupByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email parameter is required")
		return
	}

	user, err := h.userService.FindByEmail(email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}
