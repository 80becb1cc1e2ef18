package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute)),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for i := 0; i < 10; i++ {
		storage, err = New(connStr)
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	// Создаем таблицы
	_, err = storage.DB.Exec(`
        CREATE EXTENSION IF NOT EXISTS pgcrypto;

        CREATE TABLE users (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            name TEXT NOT NULL CHECK (char_length(name) BETWEEN 2 AND 30),
            avatar TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL
        );

        CREATE TABLE items (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            name TEXT NOT NULL CHECK (char_length(name) BETWEEN 2 AND 30),
            weather TEXT NOT NULL CHECK (weather IN ('hot', 'warm', 'cold')),
            image_url TEXT NOT NULL,
            owner_id UUID NOT NULL REFERENCES users (id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );

        CREATE TABLE item_likes (
            item_id UUID NOT NULL REFERENCES items (id) ON DELETE CASCADE,
            user_id UUID NOT NULL REFERENCES users (id),
            PRIMARY KEY (item_id, user_id)
        );
    `)
	require.NoError(t, err, "failed to create tables")

	cleanup := func() {
		_ = storage.DB.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его id
func (f *TestDataFactory) CreateUser(t *testing.T, name, email, passwordHash string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := f.storage.DB.QueryRow(`INSERT INTO users (name, avatar, email, password_hash)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		name, "https://example.com/avatar.png", email, passwordHash).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateItem создает тестовую вещь и возвращает её id
func (f *TestDataFactory) CreateItem(t *testing.T, name, weather string, owner uuid.UUID) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := f.storage.DB.QueryRow(`INSERT INTO items (name, weather, image_url, owner_id)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		name, weather, "https://example.com/item.png", owner).Scan(&id)
	require.NoError(t, err)
	return id
}

// AddLikeRow добавляет строку отметки напрямую, минуя репозиторий
func (f *TestDataFactory) AddLikeRow(t *testing.T, itemID, userID uuid.UUID) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO item_likes (item_id, user_id) VALUES ($1, $2)`,
		itemID, userID)
	require.NoError(t, err)
}
