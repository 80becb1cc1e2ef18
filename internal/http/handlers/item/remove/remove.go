// Package remove реализует HTTP-обработчик удаления вещи её владельцем.
package remove

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

// Handler обрабатывает HTTP-запросы на удаление вещи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления вещи.
// Remove возвращает удалённую запись или ошибку таксономии:
// не найдена, чужая вещь.
type Service interface {
	Remove(ctx context.Context, itemID, caller uuid.UUID) (*models.ClothingItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// Синтаксически некорректный идентификатор - это 400, а не 404
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

	item, err := h.service.Remove(r.Context(), itemID, caller)
	if err != nil {
		log.Error("failed to delete item", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("item deleted", slog.String("id", itemID.String()))
	render.JSON(w, r, item)
}
