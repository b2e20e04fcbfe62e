package service

import (
	"time"

	"github.com/varela/foro-api/internal/auth"
	"github.com/varela/foro-api/internal/config"
	"github.com/varela/foro-api/internal/repository"
)

type Services struct {
	Auth  *AuthService
	User  *UserService
	Topic *TopicService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	codec := auth.NewTokenCodec(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	return &Services{
		Auth:  NewAuthService(repos.User, codec),
		User:  NewUserService(repos.User),
		Topic: NewTopicService(repos.Topic, repos.Course, repos.User, repos.Answer),
	}
}
