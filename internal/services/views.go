package services

import (
	"time"

	"github.com/kanbanhq/backend/internal/models"
)

// UserShort is the compact user shape nested in board and task views.
type UserShort struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

func newUserShort(u *models.User) *UserShort {
	if u == nil {
		return nil
	}
	return &UserShort{ID: u.ID, Email: u.Email, Fullname: u.DisplayName}
}

// BoardSummary is the board shape returned by list endpoints, with the
// dashboard counters.
type BoardSummary struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	MemberCount       int64  `json:"member_count"`
	TicketCount       int64  `json:"ticket_count"`
	TaskToDoCount     int64  `json:"task_to_do_count"`
	TaskHighPrioCount int64  `json:"task_high_prio_count"`
	OwnerID           uint   `json:"owner_id"`
}

// BoardDetail is the full board shape with nested members and tasks.
type BoardDetail struct {
	ID      uint        `json:"id"`
	Title   string      `json:"title"`
	OwnerID uint        `json:"owner_id"`
	Members []UserShort `json:"members"`
	Tasks   []TaskView  `json:"tasks"`
}

// BoardUpdateView is returned by board updates: the new title plus resolved
// owner and member data.
type BoardUpdateView struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	OwnerData   UserShort   `json:"owner_data"`
	MembersData []UserShort `json:"members_data"`
}

// TaskView is the task shape with nested assignee/reviewer and comment count.
type TaskView struct {
	ID            uint       `json:"id"`
	Board         uint       `json:"board"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	Assignee      *UserShort `json:"assignee"`
	Reviewer      *UserShort `json:"reviewer"`
	DueDate       string     `json:"due_date"`
	CommentsCount int64      `json:"comments_count"`
}

func newTaskView(t *models.Task, commentsCount int64) TaskView {
	return TaskView{
		ID:            t.ID,
		Board:         t.BoardID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		Assignee:      newUserShort(t.Assignee),
		Reviewer:      newUserShort(t.Reviewer),
		DueDate:       t.DueDate,
		CommentsCount: commentsCount,
	}
}

// CommentView is the comment shape: the author appears as a display name.
type CommentView struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}

func newCommentView(c *models.Comment) CommentView {
	view := CommentView{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Content:   c.Content,
	}
	if c.Author != nil {
		view.Author = c.Author.DisplayName
	}
	return view
}
