package services

import (
	"errors"
	"testing"

	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/internal/utils"
	"github.com/kanbanhq/backend/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-testing")
}

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Task{},
		&models.Comment{},
		&models.SystemLog{},
		&models.SystemConfig{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()
	user := models.User{Email: email, DisplayName: name, Password: "irrelevant", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return &user
}

func createBoard(t *testing.T, db *gorm.DB, title string, owner *models.User, members ...*models.User) *models.Board {
	t.Helper()
	board := models.Board{Title: title, OwnerID: owner.ID}
	if err := db.Create(&board).Error; err != nil {
		t.Fatalf("failed to create board %s: %v", title, err)
	}
	for _, m := range members {
		if err := db.Model(&board).Association("Members").Append(m); err != nil {
			t.Fatalf("failed to add member %d to board %s: %v", m.ID, title, err)
		}
	}
	return &board
}

func createTask(t *testing.T, db *gorm.DB, board *models.Board, title, status, priority string) *models.Task {
	t.Helper()
	task := models.Task{
		BoardID:  board.ID,
		Title:    title,
		Status:   status,
		Priority: priority,
		DueDate:  "2026-12-31",
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return &task
}

func createComment(t *testing.T, db *gorm.DB, task *models.Task, author *models.User, content string) *models.Comment {
	t.Helper()
	comment := models.Comment{TaskID: task.ID, AuthorID: author.ID, Content: content}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	return &comment
}

// wantStatus asserts that err is an *response.AppError with the given HTTP status.
func wantStatus(t *testing.T, err error, status int) *response.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with status %d, got nil", status)
	}
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *response.AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != status {
		t.Fatalf("expected status %d, got %d (%s)", status, appErr.HTTPStatus, appErr.Message)
	}
	return appErr
}
