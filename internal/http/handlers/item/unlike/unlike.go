// Package unlike реализует HTTP-обработчик снятия отметки с вещи.
// Снятие несуществующей отметки - успешный no-op, а не ошибка.
package unlike

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
	"github.com/wtwr-app/wtwr-backend/internal/http/middlewarectx"
	"github.com/wtwr-app/wtwr-backend/internal/http/response"
	"github.com/wtwr-app/wtwr-backend/internal/lib/sl"
	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы на снятие отметки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отметок.
type Service interface {
	Unlike(ctx context.Context, itemID, caller uuid.UUID) (*models.ClothingItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.unlike"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		log.Error("invalid item id format", sl.Err(err))
		response.Err(w, r, apperr.ErrBadRequest)
		return
	}

	caller, ok := middlewarectx.RequireCaller(w, r, log)
	if !ok {
		return
	}

	item, err := h.service.Unlike(r.Context(), itemID, caller)
	if err != nil {
		log.Error("failed to unlike item", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("item unliked", slog.String("id", itemID.String()))
	render.JSON(w, r, item)
}
