package services

import (
	"errors"

	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// List returns the task's comments newest-first. The caller must be a member
// or owner of the task's board.
func (s *CommentService) List(userID, taskID uint) ([]CommentView, error) {
	task, err := s.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if !CanCreateCommentOn(userID, task) {
		return nil, response.NewForbidden("you don't have permission to view comments for this task")
	}

	var comments []models.Comment
	if err := s.db.
		Where("task_id = ?", task.ID).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, newCommentView(&comments[i]))
	}
	return views, nil
}

// Create adds a comment authored by the caller. Board membership required.
func (s *CommentService) Create(userID, taskID uint, req *CommentRequest) (*CommentView, error) {
	task, err := s.loadTask(taskID)
	if err != nil {
		return nil, err
	}
	if !CanCreateCommentOn(userID, task) {
		return nil, response.NewForbidden("you don't have permission to create comments for this task")
	}

	comment := models.Comment{
		TaskID:   task.ID,
		AuthorID: userID,
		Content:  req.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return s.view(comment.ID)
}

// Get returns a single comment. Author only, matching the update/delete rules.
func (s *CommentService) Get(userID, taskID, commentID uint) (*CommentView, error) {
	comment, err := s.loadComment(taskID, commentID)
	if err != nil {
		return nil, err
	}
	if !CanModifyComment(userID, comment) {
		return nil, response.NewForbidden("only the comment author can access this comment")
	}
	return s.view(comment.ID)
}

// Update edits a comment's content. Author only.
func (s *CommentService) Update(userID, taskID, commentID uint, req *CommentRequest) (*CommentView, error) {
	comment, err := s.loadComment(taskID, commentID)
	if err != nil {
		return nil, err
	}
	if !CanModifyComment(userID, comment) {
		return nil, response.NewForbidden("only the comment author can modify this comment")
	}

	if err := s.db.Model(comment).Update("content", req.Content).Error; err != nil {
		return nil, err
	}
	return s.view(comment.ID)
}

// Delete removes a comment. Author only; the board owner cannot delete
// another member's comment.
func (s *CommentService) Delete(userID, taskID, commentID uint) error {
	comment, err := s.loadComment(taskID, commentID)
	if err != nil {
		return err
	}
	if !CanDeleteComment(userID, comment) {
		return response.NewForbidden("only the comment author can delete this comment")
	}

	return s.db.Delete(comment).Error
}

func (s *CommentService) loadTask(taskID uint) (*models.Task, error) {
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

// loadComment fetches a comment scoped to its task, so a comment id cannot be
// addressed through a different task's URL.
func (s *CommentService) loadComment(taskID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.
		Where("id = ? AND task_id = ?", commentID, taskID).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("comment not found")
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) view(commentID uint) (*CommentView, error) {
	var comment models.Comment
	if err := s.db.Preload("Author").First(&comment, commentID).Error; err != nil {
		return nil, err
	}
	view := newCommentView(&comment)
	return &view, nil
}
