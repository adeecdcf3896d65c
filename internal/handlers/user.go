package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"mefi-backend/internal/middleware"
	"mefi-backend/internal/repository"
)

type UserHandler struct {
	userRepo *repository.UserRepo
}

func NewUserHandler(userRepo *repository.UserRepo) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// GetMe returns the authenticated user, or {"user": null} with 401 when
// the request carries no valid session.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"user": nil})
		return
	}

	user, err := h.userRepo.GetByID(r.Context(), *userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"user": nil})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch user", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
