// Package wtwr собирает приложение целиком: хранилище, миграции,
// сервисы, маршрутизатор и HTTP-сервер с поддержкой graceful shutdown.
package wtwr

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/wtwr-app/wtwr-backend/internal/config"
	"github.com/wtwr-app/wtwr-backend/internal/lib/jwt"
	"github.com/wtwr-app/wtwr-backend/internal/migrations"
	authservice "github.com/wtwr-app/wtwr-backend/internal/services/auth"
	itemservice "github.com/wtwr-app/wtwr-backend/internal/services/item"
	userservice "github.com/wtwr-app/wtwr-backend/internal/services/user"
	"github.com/wtwr-app/wtwr-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	itemService := itemservice.NewItemService(db, logger)
	userService := userservice.NewUserService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, itemService, userService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
