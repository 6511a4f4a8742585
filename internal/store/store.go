// Package store provides the persistence layer behind the /users and /moods
// resources. Three interchangeable backends exist: an in-process memory
// store, a local SQLite file, and a remote Supabase table. The backend is
// chosen once at startup and never switched mid-process.
package store

import (
	"errors"
	"time"

	"github.com/rowanhale/moodring/internal/model"
)

// ErrInvalidCredentials is returned by Authenticate for any id/pin mismatch.
// Unknown id and wrong pin are deliberately indistinguishable so callers
// cannot enumerate the directory.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Directory is the fixed set of family user records.
type Directory interface {
	// ListActiveMembers returns all active users with the PIN stripped.
	// Ordering differs by backend: the remote backend orders by name, local
	// backends by insertion order. Callers must not rely on either.
	ListActiveMembers() ([]model.FamilyMember, error)

	// Authenticate returns the full user record (PIN cleared) on an exact
	// id + pin + active match, or ErrInvalidCredentials.
	Authenticate(userID, pin string) (*model.User, error)
}

// Ledger is the shared, append-only collection of mood entries.
type Ledger interface {
	// ListMoods returns every entry, newest first. Entries with equal
	// timestamps keep insertion order, newest insertion first.
	ListMoods() ([]model.MoodEntry, error)

	// AppendMood stores a new entry, assigning a fresh unique id and the
	// current server time, and returns the stored entry.
	AppendMood(e model.NewMoodEntry) (*model.MoodEntry, error)

	// ClearMoods empties the ledger. Clearing an empty ledger is a no-op.
	ClearMoods() error
}

// Store is the full persistence adapter.
type Store interface {
	Directory
	Ledger
}

var seedCreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SeedUsers returns the household directory. The directory is static: the
// memory store holds these directly and the SQLite seed migration inserts
// the same rows.
func SeedUsers() []model.User {
	return []model.User{
		{ID: "1", Name: "Alex", Icon: "👨‍💻", PIN: "1234", Color: "#3B82F6", IsActive: true, CreatedAt: seedCreatedAt},
		{ID: "2", Name: "Sarah", Icon: "👩‍🎨", PIN: "5678", Color: "#EC4899", IsActive: true, CreatedAt: seedCreatedAt},
		{ID: "3", Name: "Emma", Icon: "👧", PIN: "1111", Color: "#10B981", IsActive: true, CreatedAt: seedCreatedAt},
		{ID: "4", Name: "Liam", Icon: "👦", PIN: "2222", Color: "#F59E0B", IsActive: true, CreatedAt: seedCreatedAt},
	}
}
