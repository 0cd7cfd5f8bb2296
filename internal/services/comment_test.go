package services

import (
	"net/http"
	"testing"

	"github.com/kanbanhq/backend/internal/models"
)

func TestCommentList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	owner := createUser(t, db, "owner@example.com", "Owner")
	member := createUser(t, db, "member@example.com", "Member")
	board := createBoard(t, db, "Sprint Board", owner, member)
	task := createTask(t, db, board, "T1", models.TaskStatusToDo, models.TaskPriorityLow)

	createComment(t, db, task, member, "first")
	createComment(t, db, task, owner, "second")
	createComment(t, db, task, member, "third")

	comments, err := svc.List(member.ID, task.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if comments[i].Content != w {
			t.Errorf("comment %d: expected %q, got %q", i, w, comments[i].Content)
		}
	}
	if comments[0].Author != "Member" {
		t.Errorf("expected author display name 'Member', got %q", comments[0].Author)
	}
}

func TestCommentList_MembersOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	owner := createUser(t, db, "owner@example.com", "Owner")
	outsider := createUser(t, db, "out@example.com", "Out")
	board := createBoard(t, db, "Sprint Board", owner)
	task := createTask(t, db, board, "T1", models.TaskStatusToDo, models.TaskPriorityLow)

	_, err := svc.List(outsider.ID, task.ID)
	wantStatus(t, err, http.StatusForbidden)

	_, err = svc.List(owner.ID, 999)
	wantStatus(t, err, http.StatusNotFound)
}

func TestCommentCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	owner := createUser(t, db, "owner@example.com", "Owner")
	member := createUser(t, db, "member@example.com", "Member")
	outsider := createUser(t, db, "out@example.com", "Out")
	board := createBoard(t, db, "Sprint Board", owner, member)
	task := createTask(t, db, board, "T1", models.TaskStatusToDo, models.TaskPriorityLow)

	view, err := svc.Create(member.ID, task.ID, &CommentRequest{Content: "looks good"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if view.Content != "looks good" {
		t.Errorf("expected content 'looks good', got %q", view.Content)
	}
	if view.Author != "Member" {
		t.Errorf("expected author 'Member', got %q", view.Author)
	}

	_, err = svc.Create(outsider.ID, task.ID, &CommentRequest{Content: "sneaky"})
	wantStatus(t, err, http.StatusForbidden)
}

func TestCommentUpdateDelete_AuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	owner := createUser(t, db, "owner@example.com", "Owner")
	member := createUser(t, db, "member@example.com", "Member")
	board := createBoard(t, db, "Sprint Board", owner, member)
	task := createTask(t, db, board, "T1", models.TaskStatusToDo, models.TaskPriorityLow)
	comment := createComment(t, db, task, member, "original")

	// Not even the board owner may touch another member's comment.
	_, err := svc.Update(owner.ID, task.ID, comment.ID, &CommentRequest{Content: "hijacked"})
	wantStatus(t, err, http.StatusForbidden)

	err = svc.Delete(owner.ID, task.ID, comment.ID)
	wantStatus(t, err, http.StatusForbidden)

	view, err := svc.Update(member.ID, task.ID, comment.ID, &CommentRequest{Content: "edited"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if view.Content != "edited" {
		t.Errorf("expected content 'edited', got %q", view.Content)
	}

	if err := svc.Delete(member.ID, task.ID, comment.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int64
	db.Model(&models.Comment{}).Count(&count)
	if count != 0 {
		t.Errorf("expected comment gone, got %d", count)
	}
}

func TestComment_ScopedToTask(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)

	owner := createUser(t, db, "owner@example.com", "Owner")
	board := createBoard(t, db, "Sprint Board", owner)
	task1 := createTask(t, db, board, "T1", models.TaskStatusToDo, models.TaskPriorityLow)
	task2 := createTask(t, db, board, "T2", models.TaskStatusToDo, models.TaskPriorityLow)
	comment := createComment(t, db, task1, owner, "on task 1")

	// A comment cannot be addressed through another task's URL.
	_, err := svc.Get(owner.ID, task2.ID, comment.ID)
	wantStatus(t, err, http.StatusNotFound)

	if _, err := svc.Get(owner.ID, task1.ID, comment.ID); err != nil {
		t.Fatalf("Get failed through the owning task: %v", err)
	}
}
