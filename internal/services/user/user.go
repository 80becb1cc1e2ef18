// Package services содержит бизнес-логику для работы с профилем пользователя.
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// ProfileRepository определяет методы для работы с профилем в хранилище.
type ProfileRepository interface {
	// GetUserByID возвращает публичную проекцию пользователя или apperr.ErrNotFound.
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdateProfile обновляет имя и аватар и возвращает обновлённую проекцию.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, avatar string) (*models.User, error)
}

// UserService реализует операции над профилем текущего пользователя.
type UserService struct {
	repo ProfileRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo ProfileRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// Current возвращает профиль пользователя по идентификатору из токена.
func (s *UserService) Current(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// UpdateProfile меняет имя и аватар текущего пользователя.
// Почта и пароль через эту операцию недоступны.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.UpdateProfile(ctx, id, req.Name, req.Avatar)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated profile", slog.String("id", id.String()))
	return user, nil
}
