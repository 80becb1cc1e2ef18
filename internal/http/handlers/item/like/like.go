// Package like реализует HTTP-обработчик отметки вещи.
//
// Любой аутентифицированный пользователь может отметить любую вещь,
// включая свою собственную. Повторная отметка ничего не меняет.
package like

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

// Handler обрабатывает HTTP-запросы на добавление отметки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отметок.
type Service interface {
	Like(ctx context.Context, itemID, caller uuid.UUID) (*models.ClothingItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.like"

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

	item, err := h.service.Like(r.Context(), itemID, caller)
	if err != nil {
		log.Error("failed to like item", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("item liked", slog.String("id", itemID.String()))
	render.JSON(w, r, item)
}
