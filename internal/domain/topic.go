package domain

import (
	"time"

	"github.com/google/uuid"
)

type TopicStatus string

const (
	TopicStatusUnanswered TopicStatus = "UNANSWERED"
	TopicStatusUnsolved   TopicStatus = "UNSOLVED"
	TopicStatusSolved     TopicStatus = "SOLVED"
)

type Topic struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string      `json:"title" gorm:"not null"`
	Message   string      `json:"message" gorm:"not null"`
	Status    TopicStatus `json:"status" gorm:"not null;default:'UNANSWERED'"`
	AuthorID  uuid.UUID   `json:"authorId" gorm:"type:uuid;not null"`
	Author    *User       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CourseID  uuid.UUID   `json:"courseId" gorm:"type:uuid;not null"`
	Course    *Course     `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Answers   []Answer    `json:"answers,omitempty" gorm:"foreignKey:TopicID"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
