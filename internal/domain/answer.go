package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer has no dedicated endpoints; answers are created internally and
// returned inline on topic detail responses.
type Answer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Message   string    `json:"message" gorm:"not null"`
	TopicID   uuid.UUID `json:"topicId" gorm:"type:uuid;not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Solution  bool      `json:"solution" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
}
