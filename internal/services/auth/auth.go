// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
	"github.com/wtwr-app/wtwr-backend/internal/lib/jwt"
	"github.com/wtwr-app/wtwr-backend/internal/lib/password"
	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя с хэшем пароля и возвращает публичную проекцию.
	// Повтор почты дает apperr.ErrDuplicateEmail.
	CreateUser(ctx context.Context, user models.User, passwordHash string) (*models.User, error)

	// GetUserCredentialsByEmail возвращает пользователя вместе с хэшем пароля.
	// Единственный запрос, в котором хэш загружается из базы.
	GetUserCredentialsByEmail(ctx context.Context, email string) (*models.UserCredentials, error)
}

// AuthService отвечает за регистрацию, вход и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Возвращаемая проекция не содержит хэша.
func (s *AuthService) Register(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Name:   req.Name,
		Avatar: req.Avatar,
		Email:  req.Email,
	}
	return s.users.CreateUser(ctx, user, hashed)
}

// Login проверяет пару email/пароль и выпускает JWT.
// Неизвестная почта и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать, какие учетные записи существуют.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"
	creds, err := s.users.GetUserCredentialsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}
	if err := password.CompareHash(creds.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(creds.ID.String())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// VerifyToken проверяет JWT и возвращает идентификатор пользователя из claims.
// Любая причина отказа (подпись, срок, формат claims) дает apperr.ErrAuth.
func (s *AuthService) VerifyToken(_ context.Context, token string) (uuid.UUID, error) {
	const op = "services.auth.VerifyToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, apperr.ErrAuth)
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, apperr.ErrAuth)
	}
	return userID, nil
}
