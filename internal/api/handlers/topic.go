package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/varela/foro-api/internal/domain"
	"github.com/varela/foro-api/internal/service"
)

type TopicHandler struct {
	topicService *service.TopicService
}

func NewTopicHandler(topicService *service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

type TopicAuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TopicCourseRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type TopicRequest struct {
	Title   string             `json:"title"`
	Message string             `json:"message"`
	Author  TopicAuthorRequest `json:"author"`
	Course  TopicCourseRequest `json:"course"`
}

type TopicResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	CreatedAt      time.Time          `json:"createdAt"`
	Status         domain.TopicStatus `json:"status"`
	Author         string             `json:"author"`
	CourseName     string             `json:"courseName"`
	CourseCategory string             `json:"courseCategory"`
}

type AnswerResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Solution  bool      `json:"solution"`
	CreatedAt time.Time `json:"createdAt"`
}

type TopicDetailResponse struct {
	TopicResponse
	Answers []AnswerResponse `json:"answers"`
}

func newTopicResponse(topic *domain.Topic) TopicResponse {
	resp := TopicResponse{
		ID:        topic.ID.String(),
		Title:     topic.Title,
		Message:   topic.Message,
		CreatedAt: topic.CreatedAt,
		Status:    topic.Status,
	}
	if topic.Author != nil {
		resp.Author = topic.Author.Name
	}
	if topic.Course != nil {
		resp.CourseName = topic.Course.Name
		resp.CourseCategory = topic.Course.Category
	}
	return resp
}

func newTopicDetailResponse(topic *domain.Topic) TopicDetailResponse {
	resp := TopicDetailResponse{
		TopicResponse: newTopicResponse(topic),
		Answers:       make([]AnswerResponse, len(topic.Answers)),
	}
	for i, answer := range topic.Answers {
		ar := AnswerResponse{
			ID:        answer.ID.String(),
			Message:   answer.Message,
			Solution:  answer.Solution,
			CreatedAt: answer.CreatedAt,
		}
		if answer.Author != nil {
			ar.Author = answer.Author.Name
		}
		resp.Answers[i] = ar
	}
	return resp
}

func (req *TopicRequest) validate() []FieldError {
	var errs []FieldError
	if req.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title must not be blank"})
	}
	if req.Message == "" {
		errs = append(errs, FieldError{Field: "message", Message: "message must not be blank"})
	}
	if req.Author.Email == "" {
		errs = append(errs, FieldError{Field: "author.email", Message: "author email must not be blank"})
	}
	if req.Course.Name == "" {
		errs = append(errs, FieldError{Field: "course.name", Message: "course name must not be blank"})
	}
	if req.Course.Category == "" {
		errs = append(errs, FieldError{Field: "course.category", Message: "course category must not be blank"})
	}
	return errs
}

func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	topic, err := h.topicService.Create(r.Context(), service.CreateTopicInput{
		Title:       req.Title,
		Message:     req.Message,
		AuthorEmail: req.Author.Email,
		Course: service.CourseInput{
			Name:     req.Course.Name,
			Category: req.Course.Category,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateTopic):
			http.Error(w, "Duplicate record not allowed", http.StatusConflict)
		case errors.Is(err, service.ErrAuthorNotFound):
			http.Error(w, "Author not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [topic.Create]: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/topico/%s", topic.ID))
	writeJSON(w, http.StatusCreated, newTopicResponse(topic))
}

func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)

	topics, total, err := h.topicService.List(r.Context(), page, size)
	if err != nil {
		log.Printf("ERROR [topic.List]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	content := make([]TopicResponse, len(topics))
	for i, topic := range topics {
		content[i] = newTopicResponse(topic)
	}

	writeJSON(w, http.StatusOK, NewPageResponse(content, page, size, total))
}

func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	topic, err := h.topicService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTopicNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("ERROR [topic.Get] topicID=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newTopicDetailResponse(topic))
}

func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	topic, err := h.topicService.Update(r.Context(), id, service.UpdateTopicInput{
		Title:       req.Title,
		Message:     req.Message,
		AuthorEmail: req.Author.Email,
		Course: service.CourseInput{
			Name:     req.Course.Name,
			Category: req.Course.Category,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTopicNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, service.ErrDuplicateTopic):
			http.Error(w, "Duplicate update not allowed", http.StatusConflict)
		case errors.Is(err, service.ErrAuthorNotFound):
			http.Error(w, "Author not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [topic.Update] topicID=%s: %v", id, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, newTopicResponse(topic))
}

func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := h.topicService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrTopicNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("ERROR [topic.Delete] topicID=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
