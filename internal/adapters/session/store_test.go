package session

import (
	"testing"

	"github.com/example/fieldreport/internal/models"
)

func TestLoadReturnsNilWhenLoggedOut(t *testing.T) {
	store := NewFileStore(t.TempDir())

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sess != nil {
		t.Errorf("expected nil session, got %+v", sess)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	saved := &models.Session{
		Token: "token-123",
		User:  models.User{ID: "u1", Username: "citizen", Email: "c@example.net", Role: "user"},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a session")
	}
	if loaded.Token != saved.Token || loaded.User.Username != saved.User.Username {
		t.Errorf("session not round-tripped: %+v", loaded)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Save(&models.Session{Token: "t"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("repeat clear errored: %v", err)
	}

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sess != nil {
		t.Error("expected no session after clear")
	}
}
