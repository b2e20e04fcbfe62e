package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/varela/foro-api/internal/domain"
	"gorm.io/gorm"
)

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *answerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *answerRepository) GetByTopicID(ctx context.Context, topicID uuid.UUID) ([]*domain.Answer, error) {
	var answers []*domain.Answer
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at ASC").
		Find(&answers, "topic_id = ?", topicID).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) DeleteByTopicID(ctx context.Context, topicID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Answer{}, "topic_id = ?", topicID).Error
}
