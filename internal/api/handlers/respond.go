package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const defaultPageSize = 10

// FieldError is one entry of a 400 validation response. The list preserves
// the order in which fields were checked.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageResponse mirrors the paged listing shape of the original API.
type PageResponse struct {
	Content       any   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPageResponse(content any, page, size int, total int64) PageResponse {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return PageResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeValidationErrors(w http.ResponseWriter, errs []FieldError) {
	writeJSON(w, http.StatusBadRequest, errs)
}

// parsePagination reads page (0-based) and size query parameters.
func parsePagination(r *http.Request) (page, size int) {
	page = 0
	size = defaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}
	return page, size
}
