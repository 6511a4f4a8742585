package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rowanhale/moodring/internal/model"
)

// MemoryStore keeps the directory and ledger in process memory. State is
// lost on restart, which is fine for development and demo use. A single
// mutex guards the ledger so concurrent appends never lose entries and
// ClearMoods is observed atomically by all readers.
type MemoryStore struct {
	users []model.User

	mu    sync.Mutex
	moods []model.MoodEntry
}

// NewMemoryStore returns a memory store seeded with the household directory
// and an empty ledger.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithUsers(SeedUsers())
}

// NewMemoryStoreWithUsers returns a memory store with a custom directory.
func NewMemoryStoreWithUsers(users []model.User) *MemoryStore {
	return &MemoryStore{users: users}
}

func (s *MemoryStore) ListActiveMembers() ([]model.FamilyMember, error) {
	members := []model.FamilyMember{}
	for _, u := range s.users {
		if u.IsActive {
			members = append(members, u.FamilyMember())
		}
	}
	return members, nil
}

func (s *MemoryStore) Authenticate(userID, pin string) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == userID && u.PIN == pin && u.IsActive {
			safe := u
			safe.PIN = ""
			return &safe, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *MemoryStore) ListMoods() ([]model.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Reverse insertion order first so a stable sort keeps the newest
	// insertion ahead on equal timestamps.
	out := make([]model.MoodEntry, len(s.moods))
	for i, m := range s.moods {
		out[len(s.moods)-1-i] = m
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *MemoryStore) AppendMood(e model.NewMoodEntry) (*model.MoodEntry, error) {
	entry := model.MoodEntry{
		ID:        uuid.NewString(),
		UserID:    e.UserID,
		UserName:  e.UserName,
		UserIcon:  e.UserIcon,
		UserColor: e.UserColor,
		Mood:      e.Mood,
		Intensity: e.Intensity,
		Note:      e.Note,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	s.moods = append(s.moods, entry)
	s.mu.Unlock()

	return &entry, nil
}

func (s *MemoryStore) ClearMoods() error {
	s.mu.Lock()
	s.moods = nil
	s.mu.Unlock()
	return nil
}
