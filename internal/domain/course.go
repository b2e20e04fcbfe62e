package domain

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null;index:idx_courses_name_category,unique"`
	Category  string    `json:"category" gorm:"not null;index:idx_courses_name_category,unique"`
	CreatedAt time.Time `json:"createdAt"`
}
