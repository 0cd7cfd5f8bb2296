package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kanbanhq/backend/internal/middleware"
	"github.com/kanbanhq/backend/internal/services"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type BoardHandler struct {
	boardService *services.BoardService
}

func NewBoardHandler(db *gorm.DB) *BoardHandler {
	return &BoardHandler{
		boardService: services.NewBoardService(db),
	}
}

// List returns all boards the caller owns or is a member of
// GET /api/boards
func (h *BoardHandler) List(c *gin.Context) {
	boards, err := h.boardService.ListForUser(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, boards)
}

// Create creates a new board owned by the caller
// POST /api/boards
func (h *BoardHandler) Create(c *gin.Context) {
	var req services.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	board, err := h.boardService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, board)
}

// GetByID returns a board with nested members and tasks
// GET /api/boards/:id
func (h *BoardHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid board id")
		return
	}

	detail, err := h.boardService.GetDetail(middleware.GetUserID(c), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, detail)
}

// Update applies a partial update to title and/or member set
// PATCH /api/boards/:id
func (h *BoardHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid board id")
		return
	}

	var req services.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	board, err := h.boardService.Update(middleware.GetUserID(c), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, board)
}

// Delete removes a board and cascades to its tasks and comments
// DELETE /api/boards/:id
func (h *BoardHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid board id")
		return
	}

	if err := h.boardService.Delete(middleware.GetUserID(c), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
