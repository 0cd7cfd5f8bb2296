package services

import (
	"net/http"
	"testing"
)

func TestEmailExists(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createUser(t, db, "alice@example.com", "Alice")

	exists, err := svc.EmailExists("alice@example.com")
	if err != nil {
		t.Fatalf("EmailExists failed: %v", err)
	}
	if !exists {
		t.Error("expected alice@example.com to exist")
	}

	exists, err = svc.EmailExists("nobody@example.com")
	if err != nil {
		t.Fatalf("EmailExists failed: %v", err)
	}
	if exists {
		t.Error("expected nobody@example.com to be free")
	}
}

func TestFindByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := createUser(t, db, "alice@example.com", "Alice")

	short, err := svc.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if short.ID != user.ID || short.Fullname != "Alice" {
		t.Errorf("unexpected result: %+v", short)
	}

	_, err = svc.FindByEmail("nobody@example.com")
	wantStatus(t, err, http.StatusNotFound)
}
