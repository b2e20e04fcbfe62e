package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/varela/foro-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates a user in the database, logs in through the API and
// returns the user together with a valid bearer token.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    user.Email,
		"password": password,
	})

	resp, err := http.Post(ts.URL("/login"), "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return user, result.Token
}

// CourseBuilder creates test courses
type CourseBuilder struct {
	name     string
	category string
}

func NewCourseBuilder() *CourseBuilder {
	suffix := uuid.New().String()[:8]
	return &CourseBuilder{
		name:     fmt.Sprintf("course_%s", suffix),
		category: "programming",
	}
}

func (b *CourseBuilder) WithName(name string) *CourseBuilder {
	b.name = name
	return b
}

func (b *CourseBuilder) WithCategory(category string) *CourseBuilder {
	b.category = category
	return b
}

func (b *CourseBuilder) Build(t *testing.T, db *gorm.DB) *domain.Course {
	t.Helper()

	course := &domain.Course{
		ID:        uuid.New(),
		Name:      b.name,
		Category:  b.category,
		CreatedAt: time.Now(),
	}

	if err := db.Create(course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}

	return course
}

// TopicBuilder creates test topics
type TopicBuilder struct {
	title   string
	message string
	author  *domain.User
	course  *domain.Course
}

func NewTopicBuilder() *TopicBuilder {
	suffix := uuid.New().String()[:8]
	return &TopicBuilder{
		title:   fmt.Sprintf("topic_%s", suffix),
		message: fmt.Sprintf("message for topic_%s", suffix),
	}
}

func (b *TopicBuilder) WithTitle(title string) *TopicBuilder {
	b.title = title
	return b
}

func (b *TopicBuilder) WithMessage(message string) *TopicBuilder {
	b.message = message
	return b
}

func (b *TopicBuilder) WithAuthor(author *domain.User) *TopicBuilder {
	b.author = author
	return b
}

func (b *TopicBuilder) WithCourse(course *domain.Course) *TopicBuilder {
	b.course = course
	return b
}

func (b *TopicBuilder) Build(t *testing.T, db *gorm.DB) *domain.Topic {
	t.Helper()

	if b.author == nil {
		b.author, _ = NewUserBuilder().Build(t, db)
	}
	if b.course == nil {
		b.course = NewCourseBuilder().Build(t, db)
	}

	topic := &domain.Topic{
		ID:        uuid.New(),
		Title:     b.title,
		Message:   b.message,
		Status:    domain.TopicStatusUnanswered,
		AuthorID:  b.author.ID,
		CourseID:  b.course.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(topic).Error; err != nil {
		t.Fatalf("failed to create topic: %v", err)
	}

	topic.Author = b.author
	topic.Course = b.course
	return topic
}
