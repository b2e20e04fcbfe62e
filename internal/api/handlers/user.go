package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/varela/foro-api/internal/domain"
	"github.com/varela/foro-api/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func (req *UserRequest) validate() []FieldError {
	var errs []FieldError
	if req.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be blank"})
	}
	if req.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email must not be blank"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password must not be blank"})
	}
	return errs
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			http.Error(w, "Duplicate record not allowed", http.StatusConflict)
			return
		}
		log.Printf("ERROR [user.Create]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/usuario/%s", user.ID))
	writeJSON(w, http.StatusCreated, newUserResponse(user))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)

	users, total, err := h.userService.List(r.Context(), page, size)
	if err != nil {
		log.Printf("ERROR [user.List]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	content := make([]UserResponse, len(users))
	for i, user := range users {
		content[i] = newUserResponse(user)
	}

	writeJSON(w, http.StatusOK, NewPageResponse(content, page, size, total))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("ERROR [user.Get] userID=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.userService.Update(r.Context(), id, service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, service.ErrDuplicateUser):
			http.Error(w, "Duplicate update not allowed", http.StatusConflict)
		default:
			log.Printf("ERROR [user.Update] userID=%s: %v", id, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("ERROR [user.Delete] userID=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
