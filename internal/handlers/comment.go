package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kanbanhq/backend/internal/middleware"
	"github.com/kanbanhq/backend/internal/services"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{
		commentService: services.NewCommentService(db),
	}
}

func commentIDs(c *gin.Context) (taskID, commentID uint, ok bool) {
	tid, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return 0, 0, false
	}

	cidParam := c.Param("comment_id")
	if cidParam == "" {
		return uint(tid), 0, true
	}
	cid, err := strconv.ParseUint(cidParam, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return 0, 0, false
	}
	return uint(tid), uint(cid), true
}

// List returns a task's comments newest-first
// GET /api/tasks/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	taskID, _, ok := commentIDs(c)
	if !ok {
		return
	}

	comments, err := h.commentService.List(middleware.GetUserID(c), taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}

// Create adds a comment to a task
// POST /api/tasks/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	taskID, _, ok := commentIDs(c)
	if !ok {
		return
	}

	var req services.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(middleware.GetUserID(c), taskID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, comment)
}

// Get returns a single comment
// GET /api/tasks/:id/comments/:comment_id
func (h *CommentHandler) Get(c *gin.Context) {
	taskID, commentID, ok := commentIDs(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(middleware.GetUserID(c), taskID, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

// Update edits a comment's content; author only
// PATCH /api/tasks/:id/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	taskID, commentID, ok := commentIDs(c)
	if !ok {
		return
	}

	var req services.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Update(middleware.GetUserID(c), taskID, commentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

// Delete removes a comment; author only
// DELETE /api/tasks/:id/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	taskID, commentID, ok := commentIDs(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(middleware.GetUserID(c), taskID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
