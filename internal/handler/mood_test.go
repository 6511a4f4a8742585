package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rowanhale/moodring/internal/model"
	"github.com/rowanhale/moodring/internal/store"
)

func postMood(t *testing.T, h *MoodHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/moods", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestMoodCreateAndList(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewMoodHandler(st, testLogger())

	rec := postMood(t, h, `{"userId":"1","userName":"Alex","userIcon":"👨‍💻","userColor":"#3B82F6","mood":"Happy","intensity":"high","note":"good news"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Success bool            `json:"success"`
		Mood    model.MoodEntry `json:"mood"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !created.Success {
		t.Error("expected success")
	}
	if created.Mood.ID == "" {
		t.Error("expected a generated id")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/moods", nil)
	listRec := httptest.NewRecorder()
	h.List(listRec, listReq)

	var listed struct {
		Success bool              `json:"success"`
		Moods   []model.MoodEntry `json:"moods"`
	}
	if err := json.NewDecoder(listRec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Moods) != 1 {
		t.Fatalf("expected 1 mood, got %d", len(listed.Moods))
	}

	got := listed.Moods[0]
	if got.Mood != "Happy" {
		t.Errorf("mood = %q, want Happy", got.Mood)
	}
	if got.Intensity == nil || *got.Intensity != model.IntensityHigh {
		t.Errorf("intensity = %v, want high", got.Intensity)
	}
	if got.Note == nil || *got.Note != "good news" {
		t.Errorf("note = %v, want %q", got.Note, "good news")
	}
	if got.UserName != "Alex" || got.UserColor != "#3B82F6" {
		t.Errorf("denormalized fields lost: %+v", got)
	}
}

func TestMoodCreateOptionalFieldsOmitted(t *testing.T) {
	h := NewMoodHandler(store.NewMemoryStore(), testLogger())

	rec := postMood(t, h, `{"userId":"2","userName":"Sarah","userIcon":"👩‍🎨","userColor":"#EC4899","mood":"Calm"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Absent optional fields must be absent from the JSON, not null.
	body := rec.Body.String()
	if strings.Contains(body, "intensity") {
		t.Errorf("intensity should be omitted when not provided: %s", body)
	}
	if strings.Contains(body, "note") {
		t.Errorf("note should be omitted when not provided: %s", body)
	}
}

func TestMoodCreateValidation(t *testing.T) {
	h := NewMoodHandler(store.NewMemoryStore(), testLogger())

	longNote := strings.Repeat("a", model.MaxNoteLength+1)
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing mood", `{"userId":"1","userName":"Alex"}`},
		{"missing user", `{"mood":"Happy"}`},
		{"bad intensity", `{"userId":"1","userName":"Alex","mood":"Happy","intensity":"extreme"}`},
		{"note too long", `{"userId":"1","userName":"Alex","mood":"Happy","note":"` + longNote + `"}`},
	}

	for _, tc := range cases {
		rec := postMood(t, h, tc.body)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, want 500", tc.name, rec.Code)
		}
		var resp struct {
			Success bool `json:"success"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: decode response: %v", tc.name, err)
		}
		if resp.Success {
			t.Errorf("%s: expected success=false", tc.name)
		}
	}
}

func TestMoodClear(t *testing.T) {
	st := store.NewMemoryStore()
	h := NewMoodHandler(st, testLogger())

	postMood(t, h, `{"userId":"1","userName":"Alex","mood":"Happy"}`)
	postMood(t, h, `{"userId":"2","userName":"Sarah","mood":"Sad"}`)

	req := httptest.NewRequest(http.MethodDelete, "/moods", nil)
	rec := httptest.NewRecorder()
	h.Clear(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "All moods cleared" {
		t.Errorf("response = %+v", resp)
	}

	moods, err := st.ListMoods()
	if err != nil {
		t.Fatalf("list moods: %v", err)
	}
	if len(moods) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(moods))
	}

	// Clearing again is still a success.
	rec = httptest.NewRecorder()
	h.Clear(rec, httptest.NewRequest(http.MethodDelete, "/moods", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("idempotent clear: status = %d, want 200", rec.Code)
	}
}

func TestMoodListEmpty(t *testing.T) {
	h := NewMoodHandler(store.NewMemoryStore(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/moods", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var resp struct {
		Success bool              `json:"success"`
		Moods   []model.MoodEntry `json:"moods"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Moods == nil {
		t.Error("moods must be an empty array, not null")
	}
}
