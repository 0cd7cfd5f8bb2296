package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/gorm"
)

type BoardService struct {
	db *gorm.DB
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{db: db}
}

type CreateBoardRequest struct {
	Title     string `json:"title" binding:"required"`
	MemberIDs []uint `json:"members"`
}

type UpdateBoardRequest struct {
	Title     *string `json:"title"`
	MemberIDs *[]uint `json:"members"` // nil leaves the set untouched; a value replaces it entirely
}

// Create creates a board owned by userID. Every member id must resolve to an
// existing user, otherwise the whole operation is rejected.
func (s *BoardService) Create(userID uint, req *CreateBoardRequest) (*BoardSummary, error) {
	members, err := s.resolveMembers(req.MemberIDs)
	if err != nil {
		return nil, err
	}

	board := models.Board{
		Title:   req.Title,
		OwnerID: userID,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&board).Error; err != nil {
			return err
		}
		if len(members) > 0 {
			if err := tx.Model(&board).Association("Members").Replace(&members); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &BoardSummary{
		ID:          board.ID,
		Title:       board.Title,
		MemberCount: int64(len(members)),
		OwnerID:     board.OwnerID,
	}, nil
}

// ListForUser returns every board the user owns or is a member of, each
// exactly once, with the summary counters.
func (s *BoardService) ListForUser(userID uint) ([]BoardSummary, error) {
	var boards []models.Board
	if err := s.db.
		Distinct("boards.*").
		Joins("LEFT JOIN board_members ON board_members.board_id = boards.id").
		Where("boards.owner_id = ? OR board_members.user_id = ?", userID, userID).
		Preload("Members").
		Find(&boards).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(boards))
	for _, b := range boards {
		ids = append(ids, b.ID)
	}
	counts, err := s.taskCounts(ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]BoardSummary, 0, len(boards))
	for _, b := range boards {
		c := counts[b.ID]
		summaries = append(summaries, BoardSummary{
			ID:                b.ID,
			Title:             b.Title,
			MemberCount:       int64(len(b.Members)),
			TicketCount:       c.Total,
			TaskToDoCount:     c.ToDo,
			TaskHighPrioCount: c.HighPrio,
			OwnerID:           b.OwnerID,
		})
	}
	return summaries, nil
}

// GetDetail returns the board with its member list and full task list.
// Requires view permission.
func (s *BoardService) GetDetail(userID, boardID uint) (*BoardDetail, error) {
	board, err := s.loadBoard(boardID)
	if err != nil {
		return nil, err
	}
	if !CanViewBoard(userID, board) {
		return nil, response.NewForbidden("you must be either a member or the owner of this board")
	}

	var tasks []models.Task
	if err := s.db.
		Where("board_id = ?", board.ID).
		Preload("Assignee").
		Preload("Reviewer").
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	taskIDs := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	commentCounts, err := commentCounts(s.db, taskIDs)
	if err != nil {
		return nil, err
	}

	detail := &BoardDetail{
		ID:      board.ID,
		Title:   board.Title,
		OwnerID: board.OwnerID,
		Members: make([]UserShort, 0, len(board.Members)),
		Tasks:   make([]TaskView, 0, len(tasks)),
	}
	for i := range board.Members {
		detail.Members = append(detail.Members, *newUserShort(&board.Members[i]))
	}
	for i := range tasks {
		detail.Tasks = append(detail.Tasks, newTaskView(&tasks[i], commentCounts[tasks[i].ID]))
	}
	return detail, nil
}

// Update applies a partial update. Only the owner may update; a provided
// member list replaces the whole membership set.
func (s *BoardService) Update(userID, boardID uint, req *UpdateBoardRequest) (*BoardUpdateView, error) {
	board, err := s.loadBoard(boardID)
	if err != nil {
		return nil, err
	}
	if !CanModifyBoard(userID, board) {
		return nil, response.NewForbidden("only the board owner can modify or delete the board")
	}

	var members []models.User
	if req.MemberIDs != nil {
		members, err = s.resolveMembers(*req.MemberIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				return response.NewValidation("title must not be empty", map[string]string{"title": "must not be empty"})
			}
			if err := tx.Model(board).Update("title", *req.Title).Error; err != nil {
				return err
			}
		}
		if req.MemberIDs != nil {
			if err := tx.Model(board).Association("Members").Replace(&members); err != nil {
				return err
			}
			board.Members = members
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var owner models.User
	if err := s.db.First(&owner, board.OwnerID).Error; err != nil {
		return nil, err
	}

	view := &BoardUpdateView{
		ID:          board.ID,
		Title:       board.Title,
		OwnerData:   *newUserShort(&owner),
		MembersData: make([]UserShort, 0, len(board.Members)),
	}
	for i := range board.Members {
		view.MembersData = append(view.MembersData, *newUserShort(&board.Members[i]))
	}
	return view, nil
}

// Delete removes the board together with all its tasks and their comments in
// a single transaction. Only the owner may delete.
func (s *BoardService) Delete(userID, boardID uint) error {
	board, err := s.loadBoard(boardID)
	if err != nil {
		return err
	}
	if !CanModifyBoard(userID, board) {
		return response.NewForbidden("only the board owner can modify or delete the board")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&models.Task{}).Select("id").Where("board_id = ?", board.ID)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", board.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Model(board).Association("Members").Clear(); err != nil {
			return err
		}
		return tx.Delete(board).Error
	})
}

// loadBoard fetches a board with its member set, mapping a missing row to NotFound.
func (s *BoardService) loadBoard(boardID uint) (*models.Board, error) {
	var board models.Board
	if err := s.db.Preload("Members").First(&board, boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("board not found")
		}
		return nil, err
	}
	return &board, nil
}

// resolveMembers loads the users for the given ids. Unknown ids are rejected
// rather than silently dropped.
func (s *BoardService) resolveMembers(ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// Deduplicate so a repeated id cannot create duplicate join rows.
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var users []models.User
	if err := s.db.Where("id IN ?", unique).Find(&users).Error; err != nil {
		return nil, err
	}

	if len(users) != len(unique) {
		found := make(map[uint]bool, len(users))
		for _, u := range users {
			found[u.ID] = true
		}
		var missing []string
		for _, id := range unique {
			if !found[id] {
				missing = append(missing, fmt.Sprint(id))
			}
		}
		return nil, response.NewValidation(
			"some member ids do not resolve to existing users",
			map[string]string{"members": "unknown user ids: " + strings.Join(missing, ", ")},
		)
	}
	return users, nil
}

// taskCounts aggregates per-board task counters in one query.
type boardTaskCounts struct {
	BoardID  uint
	Total    int64
	ToDo     int64
	HighPrio int64
}

func (s *BoardService) taskCounts(boardIDs []uint) (map[uint]boardTaskCounts, error) {
	counts := make(map[uint]boardTaskCounts, len(boardIDs))
	if len(boardIDs) == 0 {
		return counts, nil
	}

	var rows []boardTaskCounts
	if err := s.db.Model(&models.Task{}).
		Select("board_id, COUNT(*) AS total, "+
			"SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS to_do, "+
			"SUM(CASE WHEN priority = ? THEN 1 ELSE 0 END) AS high_prio",
			models.TaskStatusToDo, models.TaskPriorityHigh).
		Where("board_id IN ?", boardIDs).
		Group("board_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.BoardID] = r
	}
	return counts, nil
}

// commentCounts aggregates per-task comment counters in one query.
func commentCounts(db *gorm.DB, taskIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TaskID uint
		Total  int64
	}
	if err := db.Model(&models.Comment{}).
		Select("task_id, COUNT(*) AS total").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.TaskID] = r.Total
	}
	return counts, nil
}
