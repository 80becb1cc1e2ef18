package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wtwr-app/wtwr-backend/internal/http/middlewarectx"
	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, owner uuid.UUID, req models.CreateItemRequest) (*models.ClothingItem, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClothingItem), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	owner := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name           string
		body           string
		withCaller     bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "успешное создание",
			body:       `{"name":"Шапка","weather":"cold","imageUrl":"https://x.com/hat.png"}`,
			withCaller: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, owner, models.CreateItemRequest{
					Name:     "Шапка",
					Weather:  "cold",
					ImageURL: "https://x.com/hat.png",
				}).Return(&models.ClothingItem{
					ID:        itemID,
					Name:      "Шапка",
					Weather:   models.WeatherCold,
					ImageURL:  "https://x.com/hat.png",
					Owner:     owner,
					Likes:     []uuid.UUID{},
					CreatedAt: time.Now(),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"weather":"cold"`,
		},
		{
			name:           "недопустимый тип погоды",
			body:           `{"name":"Шапка","weather":"freezing","imageUrl":"https://x.com/hat.png"}`,
			withCaller:     true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Weather must be one of: hot warm cold`,
		},
		{
			name:           "некорректный URL картинки",
			body:           `{"name":"Шапка","weather":"cold","imageUrl":"not-a-url"}`,
			withCaller:     true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field ImageURL must be a valid URL`,
		},
		{
			name:           "нет пользователя в контексте",
			body:           `{"name":"Шапка","weather":"cold","imageUrl":"https://x.com/hat.png"}`,
			withCaller:     false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Authorization required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			if tt.withCaller {
				req = req.WithContext(middlewarectx.WithCallerID(req.Context(), owner))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
