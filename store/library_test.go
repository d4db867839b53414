package store

import (
	"testing"

	"github.com/bookmate-app/bookmate/model"
)

func createLibraryTestUser(t *testing.T, s *Store) *model.User {
	t.Helper()
	user, err := s.CreateUser(&model.User{
		Nickname:     "reader",
		Email:        "reader@example.com",
		PasswordHash: "test",
		Role:         model.RoleUser,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func TestAddLibraryEntryRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	user := createLibraryTestUser(t, s)

	entry, err := s.AddLibraryEntry(user.ID, 1, model.StatusToRead)
	if err != nil {
		t.Fatalf("Failed to add library entry: %v", err)
	}
	if entry.Status != model.StatusToRead {
		t.Errorf("Unexpected status %q", entry.Status)
	}
	if entry.AddedAt == "" || entry.UpdatedAt == "" {
		t.Error("Timestamps should be set")
	}

	if !s.HasLibraryEntry(user.ID, 1) {
		t.Error("Expected entry to exist")
	}

	// Same user and book again hits the primary key.
	if _, err := s.AddLibraryEntry(user.ID, 1, model.StatusReading); err == nil {
		t.Error("Expected duplicate insert to fail")
	}
}

func TestUpdateLibraryStatus(t *testing.T) {
	s := newTestStore(t)
	user := createLibraryTestUser(t, s)

	if _, err := s.AddLibraryEntry(user.ID, 2, model.StatusToRead); err != nil {
		t.Fatalf("Failed to add library entry: %v", err)
	}

	entry, err := s.UpdateLibraryStatus(user.ID, 2, model.StatusRead)
	if err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}
	if entry == nil {
		t.Fatal("Expected the entry to be found")
	}
	if entry.Status != model.StatusRead {
		t.Errorf("Expected status %q, got %q", model.StatusRead, entry.Status)
	}

	missing, err := s.UpdateLibraryStatus(user.ID, 999, model.StatusRead)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("Updating a missing entry should return nil")
	}
}

func TestRemoveLibraryEntry(t *testing.T) {
	s := newTestStore(t)
	user := createLibraryTestUser(t, s)

	if _, err := s.AddLibraryEntry(user.ID, 3, model.StatusToRead); err != nil {
		t.Fatalf("Failed to add library entry: %v", err)
	}

	removed, err := s.RemoveLibraryEntry(user.ID, 3)
	if err != nil {
		t.Fatalf("Failed to remove entry: %v", err)
	}
	if !removed {
		t.Error("Expected the entry to be removed")
	}

	removed, err = s.RemoveLibraryEntry(user.ID, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if removed {
		t.Error("Removing a missing entry should report false")
	}
}

func TestGetLibraryStats(t *testing.T) {
	s := newTestStore(t)
	user := createLibraryTestUser(t, s)

	for bookID, status := range map[int]string{
		1: model.StatusToRead,
		2: model.StatusToRead,
		3: model.StatusReading,
		4: model.StatusRead,
	} {
		if _, err := s.AddLibraryEntry(user.ID, bookID, status); err != nil {
			t.Fatalf("Failed to add library entry: %v", err)
		}
	}

	stats, err := s.GetLibraryStats(user.ID)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("Expected total 4, got %d", stats.Total)
	}
	if stats.ToRead != 2 || stats.Reading != 1 || stats.Read != 1 {
		t.Errorf("Unexpected counters: %+v", stats)
	}
}
