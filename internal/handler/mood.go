package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rowanhale/moodring/internal/model"
	"github.com/rowanhale/moodring/internal/store"
)

type MoodHandler struct {
	ledger store.Ledger
	logger *slog.Logger
}

func NewMoodHandler(l store.Ledger, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{ledger: l, logger: logger}
}

// List returns every mood entry, newest first.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	moods, err := h.ledger.ListMoods()
	if err != nil {
		h.logger.Error("list moods failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch moods")
		return
	}
	if moods == nil {
		moods = []model.MoodEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"moods":   moods,
	})
}

// Create appends a mood entry. Validation failures share the generic
// failure envelope; the contract only distinguishes 401 on login.
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string `json:"userId"`
		UserName  string `json:"userName"`
		UserIcon  string `json:"userIcon"`
		UserColor string `json:"userColor"`
		Mood      string `json:"mood"`
		Intensity string `json:"intensity"`
		Note      string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create mood")
		return
	}

	entry := model.NewMoodEntry{
		UserID:    strings.TrimSpace(req.UserID),
		UserName:  strings.TrimSpace(req.UserName),
		UserIcon:  req.UserIcon,
		UserColor: req.UserColor,
		Mood:      strings.TrimSpace(req.Mood),
	}
	if entry.UserID == "" || entry.UserName == "" || entry.Mood == "" {
		writeError(w, http.StatusInternalServerError, "Failed to create mood")
		return
	}
	if req.Intensity != "" {
		intensity := model.Intensity(req.Intensity)
		if !intensity.Valid() {
			writeError(w, http.StatusInternalServerError, "Failed to create mood")
			return
		}
		entry.Intensity = &intensity
	}
	if req.Note != "" {
		if len(req.Note) > model.MaxNoteLength {
			writeError(w, http.StatusInternalServerError, "Failed to create mood")
			return
		}
		note := req.Note
		entry.Note = &note
	}

	mood, err := h.ledger.AppendMood(entry)
	if err != nil {
		h.logger.Error("append mood failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create mood")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"mood":    mood,
	})
}

// Clear empties the whole ledger. Clearing an empty ledger still succeeds.
func (h *MoodHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.ClearMoods(); err != nil {
		h.logger.Error("clear moods failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to clear moods")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "All moods cleared",
	})
}
