package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService реализует интерфейс middlewarectx.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) VerifyToken(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	userID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		wantNextCalled bool
	}{
		{
			name:           "заголовок отсутствует",
			authHeader:     "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Authorization required"}`,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     "Token abc.def.ghi",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Authorization required"}`,
		},
		{
			name:       "невалидный токен",
			authHeader: "Bearer bad-token",
			setupMock: func(m *MockService) {
				m.On("VerifyToken", mock.Anything, "bad-token").
					Return(uuid.Nil, errors.New("token is expired"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Authorization required"}`,
		},
		{
			name:       "валидный токен",
			authHeader: "Bearer good-token",
			setupMock: func(m *MockService) {
				m.On("VerifyToken", mock.Anything, "good-token").
					Return(userID, nil)
			},
			expectedStatus: http.StatusOK,
			wantNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// Идентичность должна оказаться в контексте
				id, ok := CallerID(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, id)
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(mockService, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCallerID_MissingWithoutMiddleware(t *testing.T) {
	// Без middleware идентичности в контексте нет - подставного пользователя не существует
	_, ok := CallerID(context.Background())
	assert.False(t, ok)
}
