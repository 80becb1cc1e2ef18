package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// CreateItem вставляет новую вещь и возвращает созданную запись.
func (s *Storage) CreateItem(ctx context.Context, item models.ClothingItem) (*models.ClothingItem, error) {
	const op = "storage.CreateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO items (name, weather, image_url, owner_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, weather, image_url, owner_id, created_at`
	created := &models.ClothingItem{Likes: []uuid.UUID{}}
	if err := s.DB.QueryRowContext(ctx, query,
		item.Name, item.Weather, item.ImageURL, item.Owner).
		Scan(&created.ID, &created.Name, &created.Weather, &created.ImageURL,
			&created.Owner, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return created, nil
}

// ListItems возвращает все вещи, новые первыми, с их множествами отметок.
func (s *Storage) ListItems(ctx context.Context) ([]*models.ClothingItem, error) {
	const op = "storage.ListItems"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, weather, image_url, owner_id, created_at
			  FROM items
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ClothingItem
	byID := make(map[uuid.UUID]*models.ClothingItem)
	for rows.Next() {
		item := &models.ClothingItem{Likes: []uuid.UUID{}}
		if err := rows.Scan(&item.ID, &item.Name, &item.Weather, &item.ImageURL,
			&item.Owner, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
		byID[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	likeRows, err := s.DB.QueryContext(ctx, `SELECT item_id, user_id FROM item_likes`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = likeRows.Close()
	}()
	for likeRows.Next() {
		var itemID, userID uuid.UUID
		if err := likeRows.Scan(&itemID, &userID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if item, ok := byID[itemID]; ok {
			item.Likes = append(item.Likes, userID)
		}
	}
	if err := likeRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetItem возвращает вещь по ID вместе с множеством отметок.
func (s *Storage) GetItem(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error) {
	const op = "storage.GetItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, weather, image_url, owner_id, created_at
			  FROM items
			  WHERE id = $1`
	item := &models.ClothingItem{Likes: []uuid.UUID{}}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&item.ID, &item.Name, &item.Weather, &item.ImageURL,
		&item.Owner, &item.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}

	likeRows, err := s.DB.QueryContext(ctx,
		`SELECT user_id FROM item_likes WHERE item_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = likeRows.Close()
	}()
	for likeRows.Next() {
		var userID uuid.UUID
		if err := likeRows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Likes = append(item.Likes, userID)
	}
	if err := likeRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// DeleteItemOwned удаляет вещь, только если она принадлежит owner,
// и возвращает количество удалённых строк. Отметки удаляются каскадно.
func (s *Storage) DeleteItemOwned(ctx context.Context, id, owner uuid.UUID) (int64, error) {
	const op = "storage.DeleteItemOwned"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, owner)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// AddLike атомарно добавляет отметку пользователя одной командой:
// вставка охраняется существованием вещи, конфликт по первичному ключу
// игнорируется, поэтому повторная отметка ничего не меняет.
func (s *Storage) AddLike(ctx context.Context, itemID, userID uuid.UUID) (*models.ClothingItem, error) {
	const op = "storage.AddLike"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO item_likes (item_id, user_id)
			  SELECT $1, $2
			  WHERE EXISTS (SELECT 1 FROM items WHERE id = $1)
			  ON CONFLICT DO NOTHING`
	if _, err := s.DB.ExecContext(ctx, query, itemID, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return s.GetItem(ctx, itemID)
}

// RemoveLike атомарно убирает отметку пользователя. Отсутствие отметки -
// успешный no-op, отсутствие самой вещи - apperr.ErrNotFound.
func (s *Storage) RemoveLike(ctx context.Context, itemID, userID uuid.UUID) (*models.ClothingItem, error) {
	const op = "storage.RemoveLike"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM item_likes WHERE item_id = $1 AND user_id = $2`
	if _, err := s.DB.ExecContext(ctx, query, itemID, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.GetItem(ctx, itemID)
}
