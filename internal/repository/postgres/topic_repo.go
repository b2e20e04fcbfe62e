package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/varela/foro-api/internal/domain"
	"gorm.io/gorm"
)

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *topicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *domain.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	var topic domain.Topic
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Course").
		Preload("Answers").
		Preload("Answers.Author").
		First(&topic, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) ExistsByTitleAndMessage(ctx context.Context, title, message string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Topic{}).
		Where("title = ? AND message = ?", title, message).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *topicRepository) List(ctx context.Context, limit, offset int) ([]*domain.Topic, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Topic{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []*domain.Topic
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Course").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&topics).Error
	if err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

func (r *topicRepository) Update(ctx context.Context, topic *domain.Topic) error {
	return r.db.WithContext(ctx).Save(topic).Error
}

func (r *topicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Topic{}, "id = ?", id).Error
}
