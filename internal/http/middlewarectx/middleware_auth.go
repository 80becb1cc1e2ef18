// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке Authorization
// и в случае успеха добавляет в контекст идентификатор пользователя для дальнейшего
// использования в обработчиках. Это единственный источник идентичности в контексте:
// никакого пользователя по умолчанию не существует, и обработчик за этим middleware
// без валидного токена недостижим.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с единым телом ошибки.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
	"github.com/wtwr-app/wtwr-backend/internal/http/response"
	"github.com/wtwr-app/wtwr-backend/internal/lib/sl"
)

// key тип для ключей контекста HTTP-запроса.
// Тип не экспортируется, чтобы идентичность в контекст мог положить только этот пакет.
type key string

const callerID key = "caller_id"

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	VerifyToken(ctx context.Context, token string) (uuid.UUID, error)
}

// CallerID возвращает идентификатор аутентифицированного пользователя из контекста.
// Если запрос не прошел через JWTMiddleware, второй результат равен false.
func CallerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(callerID).(uuid.UUID)
	return id, ok
}

// WithCallerID кладет идентификатор пользователя в контекст. Используется в тестах обработчиков.
func WithCallerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerID, id)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет идентификатор пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				response.Err(w, r, apperr.ErrAuth)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := authService.VerifyToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				response.Err(w, r, apperr.ErrAuth)
				return
			}

			ctx := context.WithValue(r.Context(), callerID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCaller достает идентификатор пользователя из контекста,
// отвечая 401, если его там нет. Общий хвост всех защищенных обработчиков.
func RequireCaller(w http.ResponseWriter, r *http.Request, log *slog.Logger) (uuid.UUID, bool) {
	id, ok := CallerID(r.Context())
	if !ok {
		log.Error("caller id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Authorization required"))
		return uuid.Nil, false
	}
	return id, true
}
