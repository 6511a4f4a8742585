package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rowanhale/moodring/internal/model"
)

// SupabaseStore is the remote-table backend. It talks to the Supabase REST
// layer (PostgREST) with parametrized filter/order/insert/delete calls and
// translates between the snake_case table schema and the camelCase entities
// at this boundary. Remote failures are returned as wrapped errors with no
// retry; transactional guarantees belong to the database.
type SupabaseStore struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewSupabaseStore returns a store backed by the Supabase project at
// endpoint (e.g. https://xyzcompany.supabase.co) using the anon key for
// both the apikey and bearer headers. Callers must only construct this with
// complete configuration; partial config falls back to the memory store.
func NewSupabaseStore(endpoint, apiKey string) *SupabaseStore {
	return &SupabaseStore{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(endpoint, "/") + "/rest/v1",
		apiKey:  apiKey,
	}
}

// supabaseUser mirrors the users table row shape.
type supabaseUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// supabaseMood mirrors the moods table row shape.
type supabaseMood struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserIcon  string    `json:"user_icon"`
	UserColor string    `json:"user_color"`
	Mood      string    `json:"mood"`
	Intensity *string   `json:"intensity,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (m supabaseMood) entry() model.MoodEntry {
	e := model.MoodEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserIcon:  m.UserIcon,
		UserColor: m.UserColor,
		Mood:      m.Mood,
		Note:      m.Note,
		Timestamp: m.CreatedAt,
	}
	if m.Intensity != nil {
		v := model.Intensity(*m.Intensity)
		e.Intensity = &v
	}
	return e
}

// do performs one REST call. out may be nil for calls without a response
// body of interest.
func (s *SupabaseStore) do(method, table string, query url.Values, body, out any) error {
	u := s.baseURL + "/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, table, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", table, err)
		}
	}
	return nil
}

func (s *SupabaseStore) ListActiveMembers() ([]model.FamilyMember, error) {
	q := url.Values{}
	q.Set("select", "id,name,icon,color,is_active,created_at")
	q.Set("is_active", "eq.true")
	q.Set("order", "name.asc")

	var rows []supabaseUser
	if err := s.do(http.MethodGet, "users", q, nil, &rows); err != nil {
		return nil, err
	}

	members := make([]model.FamilyMember, 0, len(rows))
	for _, r := range rows {
		members = append(members, model.FamilyMember{ID: r.ID, Name: r.Name, Icon: r.Icon, Color: r.Color})
	}
	return members, nil
}

func (s *SupabaseStore) Authenticate(userID, pin string) (*model.User, error) {
	q := url.Values{}
	q.Set("select", "id,name,icon,color,is_active,created_at")
	q.Set("id", "eq."+userID)
	q.Set("pin", "eq."+pin)
	q.Set("is_active", "eq.true")

	var rows []supabaseUser
	if err := s.do(http.MethodGet, "users", q, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrInvalidCredentials
	}

	r := rows[0]
	return &model.User{
		ID:        r.ID,
		Name:      r.Name,
		Icon:      r.Icon,
		Color:     r.Color,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}, nil
}

func (s *SupabaseStore) ListMoods() ([]model.MoodEntry, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")

	var rows []supabaseMood
	if err := s.do(http.MethodGet, "moods", q, nil, &rows); err != nil {
		return nil, err
	}

	moods := make([]model.MoodEntry, 0, len(rows))
	for _, r := range rows {
		moods = append(moods, r.entry())
	}
	return moods, nil
}

func (s *SupabaseStore) AppendMood(e model.NewMoodEntry) (*model.MoodEntry, error) {
	row := supabaseMood{
		ID:        uuid.NewString(),
		UserID:    e.UserID,
		UserName:  e.UserName,
		UserIcon:  e.UserIcon,
		UserColor: e.UserColor,
		Mood:      e.Mood,
		Note:      e.Note,
		CreatedAt: time.Now().UTC(),
	}
	if e.Intensity != nil {
		v := string(*e.Intensity)
		row.Intensity = &v
	}

	var inserted []supabaseMood
	if err := s.do(http.MethodPost, "moods", nil, row, &inserted); err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert moods: empty representation returned")
	}

	entry := inserted[0].entry()
	return &entry, nil
}

func (s *SupabaseStore) ClearMoods() error {
	// PostgREST refuses an unfiltered DELETE; this filter matches every row.
	q := url.Values{}
	q.Set("id", "not.is.null")
	return s.do(http.MethodDelete, "moods", q, nil, nil)
}
