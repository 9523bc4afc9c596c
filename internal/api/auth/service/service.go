package authService

import (
	"context"

	"ProjectBlog/internal/api/auth"
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/internal/entity"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Register(c context.Context, req auth.RegisterRequest) (int64, error)
	Login(c context.Context, req auth.LoginRequest) (entity.UserLoginData, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
}

func New(log *logrus.Logger, authRepo authRepository.Repository) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
	}
}
