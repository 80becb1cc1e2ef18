package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// CreateUser сохраняет нового пользователя с хэшем пароля и возвращает
// публичную проекцию. Повтор почты дает apperr.ErrDuplicateEmail.
func (s *Storage) CreateUser(ctx context.Context, user models.User, passwordHash string) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (name, avatar, email, password_hash)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, avatar, email`
	created := &models.User{}
	if err := s.DB.QueryRowContext(ctx, query,
		user.Name, user.Avatar, user.Email, passwordHash).
		Scan(&created.ID, &created.Name, &created.Avatar, &created.Email); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return created, nil
}

// GetUserCredentialsByEmail возвращает пользователя вместе с хэшем пароля.
// Единственный запрос, читающий колонку password_hash: во всех остальных
// выборках хэш не участвует.
func (s *Storage) GetUserCredentialsByEmail(ctx context.Context, email string) (*models.UserCredentials, error) {
	const op = "storage.GetUserCredentialsByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, avatar, email, password_hash
			  FROM users
			  WHERE email = $1`
	creds := &models.UserCredentials{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&creds.ID, &creds.Name, &creds.Avatar, &creds.Email,
		&creds.PasswordHash); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return creds, nil
}

// GetUserByID возвращает публичную проекцию пользователя по его ID.
func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, avatar, email
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&u.ID, &u.Name, &u.Avatar, &u.Email); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return u, nil
}

// UpdateProfile обновляет имя и аватар пользователя и возвращает
// обновлённую публичную проекцию.
func (s *Storage) UpdateProfile(ctx context.Context, id uuid.UUID, name, avatar string) (*models.User, error) {
	const op = "storage.UpdateProfile"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = $1, avatar = $2
			  WHERE id = $3
			  RETURNING id, name, avatar, email`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, name, avatar, id)
	if err := row.Scan(&u.ID, &u.Name, &u.Avatar, &u.Email); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return u, nil
}
