package services

import (
	"github.com/kanbanhq/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats are per-user counters for the landing view.
type DashboardStats struct {
	Boards           int64 `json:"boards"`
	AssignedTasks    int64 `json:"assigned_tasks"`
	ReviewingTasks   int64 `json:"reviewing_tasks"`
	AssignedToDo     int64 `json:"assigned_to_do"`
	AssignedHighPrio int64 `json:"assigned_high_prio"`
}

// GetStats computes the counters for the given user.
func (s *DashboardService) GetStats(userID uint) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Board{}).
		Distinct("boards.id").
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Count(&stats.Boards).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Task{}).
		Where("assignee_id = ?", userID).
		Count(&stats.AssignedTasks).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Task{}).
		Where("reviewer_id = ?", userID).
		Count(&stats.ReviewingTasks).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Task{}).
		Where("assignee_id = ? AND status = ?", userID, models.TaskStatusToDo).
		Count(&stats.AssignedToDo).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Task{}).
		Where("assignee_id = ? AND priority = ?", userID, models.TaskPriorityHigh).
		Count(&stats.AssignedHighPrio).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
