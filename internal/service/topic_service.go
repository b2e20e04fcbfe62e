package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/varela/foro-api/internal/domain"
	"github.com/varela/foro-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTopicNotFound  = errors.New("topic not found")
	ErrDuplicateTopic = errors.New("topic with this title and message already exists")
	ErrAuthorNotFound = errors.New("author not found")
)

type TopicService struct {
	topicRepo  repository.TopicRepository
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	answerRepo repository.AnswerRepository
}

func NewTopicService(
	topicRepo repository.TopicRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	answerRepo repository.AnswerRepository,
) *TopicService {
	return &TopicService{
		topicRepo:  topicRepo,
		courseRepo: courseRepo,
		userRepo:   userRepo,
		answerRepo: answerRepo,
	}
}

type CourseInput struct {
	Name     string
	Category string
}

type CreateTopicInput struct {
	Title       string
	Message     string
	AuthorEmail string
	Course      CourseInput
}

type UpdateTopicInput struct {
	Title       string
	Message     string
	AuthorEmail string
	Course      CourseInput
}

// Create rejects topics whose (title, message) pair already exists. The
// author is resolved by email and must already be registered; the course is
// created on first reference.
func (s *TopicService) Create(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	exists, err := s.topicRepo.ExistsByTitleAndMessage(ctx, input.Title, input.Message)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTopic
	}

	author, err := s.userRepo.GetByEmail(ctx, input.AuthorEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	course, err := s.resolveCourse(ctx, input.Course)
	if err != nil {
		return nil, err
	}

	topic := &domain.Topic{
		ID:        uuid.New(),
		Title:     input.Title,
		Message:   input.Message,
		Status:    domain.TopicStatusUnanswered,
		AuthorID:  author.ID,
		Author:    author,
		CourseID:  course.ID,
		Course:    course,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

func (s *TopicService) Get(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) List(ctx context.Context, page, size int) ([]*domain.Topic, int64, error) {
	return s.topicRepo.List(ctx, size, page*size)
}

// Update replaces title, message, author and course wholesale.
func (s *TopicService) Update(ctx context.Context, id uuid.UUID, input UpdateTopicInput) (*domain.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	if topic.Title != input.Title || topic.Message != input.Message {
		exists, err := s.topicRepo.ExistsByTitleAndMessage(ctx, input.Title, input.Message)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateTopic
		}
	}

	author, err := s.userRepo.GetByEmail(ctx, input.AuthorEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	course, err := s.resolveCourse(ctx, input.Course)
	if err != nil {
		return nil, err
	}

	topic.Title = input.Title
	topic.Message = input.Message
	topic.AuthorID = author.ID
	topic.Author = author
	topic.CourseID = course.ID
	topic.Course = course
	topic.UpdatedAt = time.Now()

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

func (s *TopicService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.topicRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTopicNotFound
		}
		return err
	}

	if err := s.answerRepo.DeleteByTopicID(ctx, id); err != nil {
		return err
	}
	return s.topicRepo.Delete(ctx, id)
}

func (s *TopicService) resolveCourse(ctx context.Context, input CourseInput) (*domain.Course, error) {
	course, err := s.courseRepo.GetByNameAndCategory(ctx, input.Name, input.Category)
	if err == nil {
		return course, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	course = &domain.Course{
		ID:        uuid.New(),
		Name:      input.Name,
		Category:  input.Category,
		CreatedAt: time.Now(),
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}
