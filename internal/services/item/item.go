// Package services содержит бизнес-логику для работы с вещами гардероба,
// включая протокол изменения с проверкой владельца.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// ItemRepository определяет методы для работы с вещами в хранилище.
type ItemRepository interface {
	// CreateItem добавляет новую вещь и возвращает созданную запись.
	CreateItem(ctx context.Context, item models.ClothingItem) (*models.ClothingItem, error)
	// ListItems возвращает все вещи, новые первыми.
	ListItems(ctx context.Context) ([]*models.ClothingItem, error)
	// GetItem возвращает вещь по ID или apperr.ErrNotFound.
	GetItem(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error)
	// DeleteItemOwned удаляет вещь, только если она принадлежит owner,
	// и возвращает количество удалённых строк.
	DeleteItemOwned(ctx context.Context, id, owner uuid.UUID) (int64, error)
	// AddLike атомарно добавляет пользователя в множество отметок
	// и возвращает обновлённую вещь. Повтор - no-op.
	AddLike(ctx context.Context, itemID, userID uuid.UUID) (*models.ClothingItem, error)
	// RemoveLike атомарно убирает пользователя из множества отметок
	// и возвращает обновлённую вещь. Отсутствие отметки - no-op.
	RemoveLike(ctx context.Context, itemID, userID uuid.UUID) (*models.ClothingItem, error)
}

// ItemService реализует бизнес-логику работы с вещами гардероба.
type ItemService struct {
	repo ItemRepository
	log  *slog.Logger
}

// NewItemService создает новый экземпляр ItemService.
func NewItemService(repo ItemRepository, log *slog.Logger) *ItemService {
	return &ItemService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую вещь. Владельцем навсегда становится вызывающий пользователь.
func (s *ItemService) Create(ctx context.Context, owner uuid.UUID, req models.CreateItemRequest) (*models.ClothingItem, error) {
	item := models.ClothingItem{
		Name:     req.Name,
		Weather:  req.Weather,
		ImageURL: req.ImageURL,
		Owner:    owner,
	}
	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new item", slog.String("id", created.ID.String()))
	return created, nil
}

// List возвращает список всех вещей. Доступен без аутентификации.
func (s *ItemService) List(ctx context.Context) ([]*models.ClothingItem, error) {
	return s.repo.ListItems(ctx)
}

// Remove удаляет вещь по ID и возвращает удалённую запись.
// Сначала проверяется существование, затем владелец, и только после этого
// выполняется условное удаление. Если вещь исчезла между проверкой и
// удалением, результатом будет apperr.ErrNotFound, а не сбой.
func (s *ItemService) Remove(ctx context.Context, itemID, caller uuid.UUID) (*models.ClothingItem, error) {
	const op = "services.item.Remove"

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Owner != caller {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrForbidden)
	}

	deleted, err := s.repo.DeleteItemOwned(ctx, itemID, caller)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}

	s.log.Info("deleted item", slog.String("id", itemID.String()))
	return item, nil
}

// Like добавляет отметку вызывающего пользователя. Любой аутентифицированный
// пользователь может отметить любую вещь, повторная отметка ничего не меняет.
func (s *ItemService) Like(ctx context.Context, itemID, caller uuid.UUID) (*models.ClothingItem, error) {
	return s.repo.AddLike(ctx, itemID, caller)
}

// Unlike убирает отметку вызывающего пользователя. Снятие несуществующей
// отметки - успешный no-op.
func (s *ItemService) Unlike(ctx context.Context, itemID, caller uuid.UUID) (*models.ClothingItem, error) {
	return s.repo.RemoveLike(ctx, itemID, caller)
}
