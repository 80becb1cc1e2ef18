package services_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
	"github.com/wtwr-app/wtwr-backend/internal/models"
	services "github.com/wtwr-app/wtwr-backend/internal/services/item"
)

// Мок для ItemRepository
type ItemRepoMock struct {
	mock.Mock
}

func (m *ItemRepoMock) CreateItem(ctx context.Context, item models.ClothingItem) (*models.ClothingItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

func (m *ItemRepoMock) ListItems(ctx context.Context) ([]*models.ClothingItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ClothingItem), args.Error(1)
}

func (m *ItemRepoMock) GetItem(ctx context.Context, id uuid.UUID) (*models.ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

func (m *ItemRepoMock) DeleteItemOwned(ctx context.Context, id, owner uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ItemRepoMock) AddLike(ctx context.Context, itemID, userID uuid.UUID) (*models.ClothingItem, error) {
	args := m.Called(ctx, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

func (m *ItemRepoMock) RemoveLike(ctx context.Context, itemID, userID uuid.UUID) (*models.ClothingItem, error) {
	args := m.Called(ctx, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestItemService_Create(t *testing.T) {
	owner := uuid.New()
	req := models.CreateItemRequest{
		Name:     "Parka",
		Weather:  models.WeatherCold,
		ImageURL: "https://x.com/parka.png",
	}

	repo := new(ItemRepoMock)
	repo.On("CreateItem", mock.Anything, mock.MatchedBy(func(item models.ClothingItem) bool {
		return item.Owner == owner && item.Name == "Parka" && item.Weather == models.WeatherCold
	})).Return(&models.ClothingItem{
		ID:        uuid.New(),
		Name:      "Parka",
		Weather:   models.WeatherCold,
		ImageURL:  "https://x.com/parka.png",
		Owner:     owner,
		Likes:     []uuid.UUID{},
		CreatedAt: time.Now(),
	}, nil).Once()

	svc := services.NewItemService(repo, testLogger())

	item, err := svc.Create(context.Background(), owner, req)
	require.NoError(t, err)
	assert.Equal(t, owner, item.Owner)
	repo.AssertExpectations(t)
}

func TestItemService_Remove(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	itemID := uuid.New()
	item := &models.ClothingItem{ID: itemID, Name: "Parka", Owner: owner}

	tests := []struct {
		name      string
		caller    uuid.UUID
		setupMock func(*ItemRepoMock)
		wantErr   error
	}{
		{
			name:   "владелец удаляет свою вещь",
			caller: owner,
			setupMock: func(m *ItemRepoMock) {
				m.On("GetItem", mock.Anything, itemID).Return(item, nil).Once()
				m.On("DeleteItemOwned", mock.Anything, itemID, owner).Return(int64(1), nil).Once()
			},
		},
		{
			name:   "чужая вещь - запрещено, удаления не происходит",
			caller: stranger,
			setupMock: func(m *ItemRepoMock) {
				m.On("GetItem", mock.Anything, itemID).Return(item, nil).Once()
			},
			wantErr: apperr.ErrForbidden,
		},
		{
			name:   "вещь не найдена",
			caller: owner,
			setupMock: func(m *ItemRepoMock) {
				m.On("GetItem", mock.Anything, itemID).Return(nil, apperr.ErrNotFound).Once()
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:   "вещь исчезла между проверкой и удалением",
			caller: owner,
			setupMock: func(m *ItemRepoMock) {
				m.On("GetItem", mock.Anything, itemID).Return(item, nil).Once()
				m.On("DeleteItemOwned", mock.Anything, itemID, owner).Return(int64(0), nil).Once()
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(ItemRepoMock)
			tt.setupMock(repo)
			svc := services.NewItemService(repo, testLogger())

			got, err := svc.Remove(context.Background(), itemID, tt.caller)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, itemID, got.ID)
			}
			// DeleteItemOwned не должен вызываться для чужой вещи
			repo.AssertExpectations(t)
		})
	}
}

func TestItemService_LikeUnlike(t *testing.T) {
	itemID := uuid.New()
	caller := uuid.New()
	liked := &models.ClothingItem{ID: itemID, Likes: []uuid.UUID{caller}}
	unliked := &models.ClothingItem{ID: itemID, Likes: []uuid.UUID{}}

	t.Run("повторная отметка идемпотентна", func(t *testing.T) {
		repo := new(ItemRepoMock)
		repo.On("AddLike", mock.Anything, itemID, caller).Return(liked, nil).Twice()
		svc := services.NewItemService(repo, testLogger())

		first, err := svc.Like(context.Background(), itemID, caller)
		require.NoError(t, err)
		second, err := svc.Like(context.Background(), itemID, caller)
		require.NoError(t, err)

		assert.Equal(t, first.Likes, second.Likes)
		repo.AssertExpectations(t)
	})

	t.Run("снятие несуществующей отметки - успешный no-op", func(t *testing.T) {
		repo := new(ItemRepoMock)
		repo.On("RemoveLike", mock.Anything, itemID, caller).Return(unliked, nil).Once()
		svc := services.NewItemService(repo, testLogger())

		item, err := svc.Unlike(context.Background(), itemID, caller)
		require.NoError(t, err)
		assert.Empty(t, item.Likes)
	})

	t.Run("отметка несуществующей вещи", func(t *testing.T) {
		repo := new(ItemRepoMock)
		repo.On("AddLike", mock.Anything, itemID, caller).Return(nil, apperr.ErrNotFound).Once()
		svc := services.NewItemService(repo, testLogger())

		_, err := svc.Like(context.Background(), itemID, caller)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
