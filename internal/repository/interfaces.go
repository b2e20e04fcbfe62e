package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/varela/foro-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByNameAndEmail(ctx context.Context, name, email string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TopicRepository interface {
	Create(ctx context.Context, topic *domain.Topic) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ExistsByTitleAndMessage(ctx context.Context, title, message string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Topic, int64, error)
	Update(ctx context.Context, topic *domain.Topic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	GetByNameAndCategory(ctx context.Context, name, category string) (*domain.Course, error)
}

type AnswerRepository interface {
	Create(ctx context.Context, answer *domain.Answer) error
	GetByTopicID(ctx context.Context, topicID uuid.UUID) ([]*domain.Answer, error)
	DeleteByTopicID(ctx context.Context, topicID uuid.UUID) error
}

type Repositories struct {
	User   UserRepository
	Topic  TopicRepository
	Course CourseRepository
	Answer AnswerRepository
}
