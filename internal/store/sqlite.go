package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rowanhale/moodring/internal/model"
)

// SQLiteStore is the durable local backend. Concurrency control is
// delegated to SQLite itself (WAL mode with a busy timeout, see
// internal/database).
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const moodCols = `id, user_id, user_name, user_icon, user_color, mood, intensity, note, created_at`

func scanMood(scanner interface{ Scan(...any) error }) (*model.MoodEntry, error) {
	var m model.MoodEntry
	var intensity sql.NullString
	var note sql.NullString

	err := scanner.Scan(
		&m.ID, &m.UserID, &m.UserName, &m.UserIcon, &m.UserColor,
		&m.Mood, &intensity, &note, &m.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if intensity.Valid {
		v := model.Intensity(intensity.String)
		m.Intensity = &v
	}
	if note.Valid {
		m.Note = &note.String
	}
	return &m, nil
}

func (s *SQLiteStore) ListActiveMembers() ([]model.FamilyMember, error) {
	rows, err := s.db.Query(
		`SELECT id, name, icon, color FROM users WHERE is_active = 1 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := []model.FamilyMember{}
	for rows.Next() {
		var m model.FamilyMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Icon, &m.Color); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *SQLiteStore) Authenticate(userID, pin string) (*model.User, error) {
	row := s.db.QueryRow(
		`SELECT id, name, icon, color, is_active, created_at FROM users
		 WHERE id = ? AND pin = ? AND is_active = 1`,
		userID, pin,
	)

	var u model.User
	var active int
	err := row.Scan(&u.ID, &u.Name, &u.Icon, &u.Color, &active, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	u.IsActive = active != 0
	return &u, nil
}

func (s *SQLiteStore) ListMoods() ([]model.MoodEntry, error) {
	// rowid breaks equal-timestamp ties so the newest insertion stays first.
	rows, err := s.db.Query(
		`SELECT ` + moodCols + ` FROM moods ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	defer rows.Close()

	moods := []model.MoodEntry{}
	for rows.Next() {
		m, err := scanMood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mood: %w", err)
		}
		moods = append(moods, *m)
	}
	return moods, rows.Err()
}

func (s *SQLiteStore) AppendMood(e model.NewMoodEntry) (*model.MoodEntry, error) {
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	var intensity sql.NullString
	if e.Intensity != nil {
		intensity = sql.NullString{String: string(*e.Intensity), Valid: true}
	}
	var note sql.NullString
	if e.Note != nil {
		note = sql.NullString{String: *e.Note, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO moods (id, user_id, user_name, user_icon, user_color, mood, intensity, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.UserID, e.UserName, e.UserIcon, e.UserColor, e.Mood, intensity, note, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert mood: %w", err)
	}

	row := s.db.QueryRow(`SELECT `+moodCols+` FROM moods WHERE id = ?`, id)
	m, err := scanMood(row)
	if err != nil {
		return nil, fmt.Errorf("get mood: %w", err)
	}
	return m, nil
}

func (s *SQLiteStore) ClearMoods() error {
	_, err := s.db.Exec(`DELETE FROM moods`)
	if err != nil {
		return fmt.Errorf("clear moods: %w", err)
	}
	return nil
}
