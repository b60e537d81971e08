package handler

import (
	"encoding/json"
	"errors"
	"health_data_api/internal/app/service"
	"health_data_api/internal/common"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.createUser)     // POST /users/
	r.Get("/{userID}", h.getUser) // GET /users/{user_id}
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), errorDetail("Error inserting user", err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidID):
			common.RespondWithError(w, http.StatusBadRequest, "Invalid user ID format")
		case errors.Is(err, common.ErrNotFound):
			common.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			common.RespondWithError(w, common.HTTPStatusFromError(err), errorDetail("Error retrieving user", err))
		}
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}
