package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kanbanhq/backend/internal/middleware"
	"github.com/kanbanhq/backend/internal/services"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{
		taskService: services.NewTaskService(db),
	}
}

// Create creates a task on a board the caller belongs to
// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, task)
}

// GetByID returns a task detail
// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}

	task, err := h.taskService.GetByID(middleware.GetUserID(c), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, task)
}

// Update applies a partial update; explicit null clears assignee/reviewer
// PATCH /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}

	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Update(middleware.GetUserID(c), uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, task)
}

// Delete removes a task; board owner only
// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid task id")
		return
	}

	if err := h.taskService.Delete(middleware.GetUserID(c), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListAssignedToMe returns tasks assigned to the caller across all boards
// GET /api/tasks/assigned-to-me
func (h *TaskHandler) ListAssignedToMe(c *gin.Context) {
	tasks, err := h.taskService.ListAssignedTo(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tasks)
}

// ListReviewing returns tasks the caller is reviewing across all boards
// GET /api/tasks/reviewing
func (h *TaskHandler) ListReviewing(c *gin.Context) {
	tasks, err := h.taskService.ListReviewing(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tasks)
}
