package services

import (
	"encoding/json"
	"errors"

	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// NullableID distinguishes the three PATCH states of an optional reference:
// absent (leave untouched), explicit null (clear), and a value (set).
type NullableID struct {
	Present bool
	Value   *uint
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type CreateTaskRequest struct {
	BoardID     uint   `json:"board" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required,oneof=to-do in-progress review done"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high"`
	AssigneeID  *uint  `json:"assignee_id"`
	ReviewerID  *uint  `json:"reviewer_id"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,oneof=to-do in-progress review done"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string    `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID  NullableID `json:"assignee_id"`
	ReviewerID  NullableID `json:"reviewer_id"`
}

// Create creates a task on a board. The caller must be a member or the owner;
// assignee and reviewer, if given, must resolve to current board members.
func (s *TaskService) Create(userID uint, req *CreateTaskRequest) (*TaskView, error) {
	var board models.Board
	if err := s.db.Preload("Members").First(&board, req.BoardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("board not found")
		}
		return nil, err
	}

	if !CanCreateTaskOn(userID, &board) {
		return nil, response.NewForbidden("you must be a member of the board to create tasks")
	}

	if err := s.validateAssignment(&board, req.AssigneeID, "assignee_id", "assignee"); err != nil {
		return nil, err
	}
	if err := s.validateAssignment(&board, req.ReviewerID, "reviewer_id", "reviewer"); err != nil {
		return nil, err
	}

	task := models.Task{
		BoardID:     board.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		ReviewerID:  req.ReviewerID,
		DueDate:     req.DueDate,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	return s.view(task.ID)
}

// GetByID returns a task view. The caller must be a member or owner of the
// task's board.
func (s *TaskService) GetByID(userID, taskID uint) (*TaskView, error) {
	task, err := s.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if !CanModifyTask(userID, task) {
		return nil, response.NewForbidden("you must be either a member or the owner of this board")
	}
	return s.view(task.ID)
}

// Update applies a partial update. Absent fields are untouched; an explicit
// null clears assignee/reviewer. Newly supplied references are re-validated
// against current board membership.
func (s *TaskService) Update(userID, taskID uint, req *UpdateTaskRequest) (*TaskView, error) {
	task, err := s.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if !CanModifyTask(userID, task) {
		return nil, response.NewForbidden("you must be either a member or the owner of this board")
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.AssigneeID.Present {
		if req.AssigneeID.Value != nil {
			if err := s.validateAssignment(task.Board, req.AssigneeID.Value, "assignee_id", "assignee"); err != nil {
				return nil, err
			}
		}
		updates["assignee_id"] = req.AssigneeID.Value
	}
	if req.ReviewerID.Present {
		if req.ReviewerID.Value != nil {
			if err := s.validateAssignment(task.Board, req.ReviewerID.Value, "reviewer_id", "reviewer"); err != nil {
				return nil, err
			}
		}
		updates["reviewer_id"] = req.ReviewerID.Value
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.view(task.ID)
}

// Delete removes the task and its comments. Only the board owner may delete,
// stricter than the member-wide modify permission.
func (s *TaskService) Delete(userID, taskID uint) error {
	task, err := s.loadTask(taskID)
	if err != nil {
		return err
	}
	if !CanDeleteTask(userID, task) {
		return response.NewForbidden("only the board owner can delete tasks")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
}

// ListAssignedTo returns all tasks assigned to the user across all boards,
// regardless of current board membership.
func (s *TaskService) ListAssignedTo(userID uint) ([]TaskView, error) {
	return s.list("assignee_id = ?", userID)
}

// ListReviewing returns all tasks the user is reviewing across all boards.
func (s *TaskService) ListReviewing(userID uint) ([]TaskView, error) {
	return s.list("reviewer_id = ?", userID)
}

func (s *TaskService) list(query string, userID uint) ([]TaskView, error) {
	var tasks []models.Task
	if err := s.db.
		Where(query, userID).
		Preload("Assignee").
		Preload("Reviewer").
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	counts, err := commentCounts(s.db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, newTaskView(&tasks[i], counts[tasks[i].ID]))
	}
	return views, nil
}

// loadTask fetches a task with its board and member set for permission checks.
func (s *TaskService) loadTask(taskID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.
		Preload("Board").
		Preload("Board.Members").
		First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("task not found")
		}
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) view(taskID uint) (*TaskView, error) {
	var task models.Task
	if err := s.db.
		Preload("Assignee").
		Preload("Reviewer").
		First(&task, taskID).Error; err != nil {
		return nil, err
	}

	counts, err := commentCounts(s.db, []uint{task.ID})
	if err != nil {
		return nil, err
	}

	view := newTaskView(&task, counts[task.ID])
	return &view, nil
}

// validateAssignment checks that a supplied assignee/reviewer id resolves to
// a user who is the board owner or a current member.
func (s *TaskService) validateAssignment(board *models.Board, id *uint, field, label string) error {
	if id == nil {
		return nil
	}

	var user models.User
	if err := s.db.First(&user, *id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewValidation(label+" not found", map[string]string{field: "user does not exist"})
		}
		return err
	}

	if !IsValidAssignee(user.ID, board) {
		return response.NewValidation(label+" must be a member of the board", map[string]string{field: "not a board member"})
	}
	return nil
}
