package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rowanhale/moodring/internal/model"
	"github.com/rowanhale/moodring/internal/store"
)

type UserHandler struct {
	directory store.Directory
	logger    *slog.Logger
}

func NewUserHandler(d store.Directory, logger *slog.Logger) *UserHandler {
	return &UserHandler{directory: d, logger: logger}
}

// List returns the active family members with PINs stripped.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.directory.ListActiveMembers()
	if err != nil {
		h.logger.Error("list members failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch family members")
		return
	}
	if members == nil {
		members = []model.FamilyMember{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"familyMembers": members,
	})
}

// Login checks a userId + pin pair against the directory. Any mismatch gets
// the same 401 so callers cannot tell an unknown id from a wrong pin.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		PIN    string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	user, err := h.directory.Authenticate(req.UserID, req.PIN)
	if errors.Is(err, store.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}
