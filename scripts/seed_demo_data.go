package main

import (
	"fmt"
	"os"

	"github.com/kanbanhq/backend/internal/config"
	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/internal/utils"
	"gorm.io/gorm"
)

// Seeds a demo workspace for local development: three accounts, one shared
// board with a handful of tasks and comments. Run from the repo root:
//
//	go run scripts/seed_demo_data.go
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := models.InitDB(&cfg.Database); err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		os.Exit(1)
	}

	db := models.GetDB()

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		fmt.Println("Database already has users, skipping seed")
		return
	}

	owner := seedUser(db, "demo@example.com", "Demo Owner")
	alice := seedUser(db, "alice@example.com", "Alice Developer")
	bob := seedUser(db, "bob@example.com", "Bob Reviewer")

	board := models.Board{Title: "Demo Sprint", OwnerID: owner.ID}
	if err := db.Create(&board).Error; err != nil {
		fmt.Printf("Failed to create board: %v\n", err)
		os.Exit(1)
	}
	if err := db.Model(&board).Association("Members").Append(alice, bob); err != nil {
		fmt.Printf("Failed to add members: %v\n", err)
		os.Exit(1)
	}

	tasks := []models.Task{
		{BoardID: board.ID, Title: "Set up CI pipeline", Status: models.TaskStatusToDo, Priority: models.TaskPriorityHigh, AssigneeID: &alice.ID, ReviewerID: &bob.ID, DueDate: "2026-09-15"},
		{BoardID: board.ID, Title: "Write onboarding docs", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityMedium, AssigneeID: &bob.ID, DueDate: "2026-09-30"},
		{BoardID: board.ID, Title: "Fix login redirect", Status: models.TaskStatusDone, Priority: models.TaskPriorityLow, DueDate: "2026-09-01"},
	}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			fmt.Printf("Failed to create task: %v\n", err)
			os.Exit(1)
		}
	}

	comment := models.Comment{TaskID: tasks[0].ID, AuthorID: bob.ID, Content: "Let's use the shared runner for this."}
	if err := db.Create(&comment).Error; err != nil {
		fmt.Printf("Failed to create comment: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d users, 1 board, %d tasks\n", 3, len(tasks))
	fmt.Println("All demo accounts use the password: demo1234")
}

func seedUser(db *gorm.DB, email, name string) *models.User {
	hash, err := utils.HashPassword("demo1234")
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	user := models.User{Email: email, DisplayName: name, Password: hash, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		fmt.Printf("Failed to create user %s: %v\n", email, err)
		os.Exit(1)
	}
	return &user
}
