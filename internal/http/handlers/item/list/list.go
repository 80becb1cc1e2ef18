// Package list реализует HTTP-обработчик получения списка вещей.
// Маршрут открытый, аутентификация не требуется.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/wtwr-app/wtwr-backend/internal/http/response"
	"github.com/wtwr-app/wtwr-backend/internal/lib/sl"
	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка вещей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения вещей.
type Service interface {
	List(ctx context.Context) ([]*models.ClothingItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list items", sl.Err(err))
		response.Err(w, r, err)
		return
	}
	if items == nil {
		items = []*models.ClothingItem{}
	}

	log.Info("items listed", slog.Int("count", len(items)))
	render.JSON(w, r, items)
}
