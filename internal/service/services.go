package service

import (
	"github.com/mvachon/userd/internal/repository"
	"github.com/mvachon/userd/internal/session"
)

type Services struct {
	Auth *AuthService
	User *UserService
}

func NewServices(repos *repository.Repositories, sessions *session.Manager) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, sessions),
		User: NewUserService(repos.User),
	}
}
