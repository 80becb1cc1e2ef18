// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей и вещей гардероба. Ошибки движка переводятся в
// таксономию apperr здесь, чтобы верхние слои не знали о кодах PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и вещами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'items'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table items missing or query error: %w", err)
	}
	return nil
}

// translate переводит ошибки PostgreSQL в ошибки приложения.
// Уникальный индекс почты дает ErrDuplicateEmail, отсутствие строки - ErrNotFound.
func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.ErrDuplicateEmail
		case pgerrcode.ForeignKeyViolation:
			return apperr.ErrNotFound
		}
	}
	return err
}
