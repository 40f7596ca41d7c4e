package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mvachon/userd/internal/domain"
	"github.com/mvachon/userd/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create handles POST /users/.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" {
		http.Error(w, "No name provided", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "No email provided", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "No password provided", http.StatusBadRequest)
		return
	}

	if err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		// Constraint collisions get a specific, safe message; anything else
		// stays generic so store internals never reach the client.
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			http.Error(w, "Email already used", http.StatusNotFound)
		case errors.Is(err, domain.ErrNameTaken):
			http.Error(w, "Username already used", http.StatusNotFound)
		default:
			slog.Error("user creation failed", slog.Any("error", err))
			http.Error(w, "User not created", http.StatusNotFound)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "No id provided", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		slog.Error("user lookup failed", slog.Int64("id", id), slog.Any("error", err))
		http.Error(w, "", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.Public())
}

// List handles GET /users/list. The session middleware has already gated
// this endpoint.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("user listing failed", slog.Any("error", err))
		http.Error(w, "", http.StatusNotFound)
		return
	}

	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "No id provided", http.StatusBadRequest)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		slog.Error("user deletion failed", slog.Int64("id", id), slog.Any("error", err))
		http.Error(w, "User not deleted", http.StatusNotFound)
		return
	}

	fmt.Fprintf(w, "User with id: %d deleted", id)
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, errors.New("no id provided")
	}
	return strconv.ParseInt(raw, 10, 64)
}
