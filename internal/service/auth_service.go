package service

import (
	"context"
	"errors"

	"github.com/varela/foro-api/internal/auth"
	"github.com/varela/foro-api/internal/domain"
	"github.com/varela/foro-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies login credentials and issues tokens. Tokens are
// stateless; there is no session store or revocation.
type AuthService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

func NewAuthService(userRepo repository.UserRepository, codec *auth.TokenCodec) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *domain.User
	Token string
}

// Authenticate compares the supplied password against the stored bcrypt
// hash. Unknown emails and wrong passwords are indistinguishable to callers.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

// VerifySubject delegates to the token codec; exposed for the
// authentication middleware.
func (s *AuthService) VerifySubject(tokenString string) (string, error) {
	return s.codec.VerifySubject(tokenString)
}

func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}
