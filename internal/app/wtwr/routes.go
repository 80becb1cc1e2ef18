package wtwr

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/auth/signin"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/auth/signup"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/health"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/item/create"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/item/like"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/item/list"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/item/remove"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/item/unlike"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/user/me"
	"github.com/wtwr-app/wtwr-backend/internal/http/handlers/user/update"
	"github.com/wtwr-app/wtwr-backend/internal/http/middlewarectx"
	"github.com/wtwr-app/wtwr-backend/internal/http/response"
	authservice "github.com/wtwr-app/wtwr-backend/internal/services/auth"
	itemservice "github.com/wtwr-app/wtwr-backend/internal/services/item"
	userservice "github.com/wtwr-app/wtwr-backend/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, itemService *itemservice.ItemService, userService *userservice.UserService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/signup", signup.New(logger, authService).ServeHTTP)
	r.Post("/signin", signin.New(logger, authService).ServeHTTP)
	r.Get("/items", list.New(logger, itemService).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/items", create.New(logger, itemService).ServeHTTP)
		r.Delete("/items/{itemId}", remove.New(logger, itemService).ServeHTTP)
		r.Put("/items/{itemId}/likes", like.New(logger, itemService).ServeHTTP)
		r.Delete("/items/{itemId}/likes", unlike.New(logger, itemService).ServeHTTP)
		r.Get("/users/me", me.New(logger, userService).ServeHTTP)
		r.Patch("/users/me", update.New(logger, userService).ServeHTTP)
	})

	// Неизвестный маршрут отвечает в том же формате, что и остальные ошибки
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Err(w, r, apperr.ErrNotFound)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
