package services

import (
	"testing"

	"github.com/kanbanhq/backend/internal/models"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	owner := createUser(t, db, "owner@example.com", "Owner")
	member := createUser(t, db, "member@example.com", "Member")

	owned := createBoard(t, db, "Owned", member)
	joined := createBoard(t, db, "Joined", owner, member)

	t1 := createTask(t, db, owned, "A", models.TaskStatusToDo, models.TaskPriorityHigh)
	db.Model(t1).Update("assignee_id", member.ID)
	t2 := createTask(t, db, joined, "B", models.TaskStatusDone, models.TaskPriorityLow)
	db.Model(t2).Update("assignee_id", member.ID)
	t3 := createTask(t, db, joined, "C", models.TaskStatusReview, models.TaskPriorityLow)
	db.Model(t3).Update("reviewer_id", member.ID)

	stats, err := svc.GetStats(member.ID)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.Boards != 2 {
		t.Errorf("expected 2 boards, got %d", stats.Boards)
	}
	if stats.AssignedTasks != 2 {
		t.Errorf("expected 2 assigned tasks, got %d", stats.AssignedTasks)
	}
	if stats.ReviewingTasks != 1 {
		t.Errorf("expected 1 reviewing task, got %d", stats.ReviewingTasks)
	}
	if stats.AssignedToDo != 1 {
		t.Errorf("expected 1 assigned to-do task, got %d", stats.AssignedToDo)
	}
	if stats.AssignedHighPrio != 1 {
		t.Errorf("expected 1 assigned high-prio task, got %d", stats.AssignedHighPrio)
	}
}

func TestDashboardStats_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	user := createUser(t, db, "lonely@example.com", "Lonely")

	stats, err := svc.GetStats(user.ID)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Boards != 0 || stats.AssignedTasks != 0 || stats.ReviewingTasks != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}
