// Package create реализует HTTP-обработчик создания новых вещей гардероба.
//
// Handler принимает JSON с данными вещи, валидирует их, извлекает
// идентификатор пользователя из контекста и вызывает бизнес-логику создания.
// Владельцем вещи навсегда становится вызывающий пользователь.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/wtwr-app/wtwr-backend/internal/http/middlewarectx"
	"github.com/wtwr-app/wtwr-backend/internal/http/response"
	"github.com/wtwr-app/wtwr-backend/internal/lib/sl"
	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы на создание вещей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики вещей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания вещи.
type Service interface {
	Create(ctx context.Context, owner uuid.UUID, req models.CreateItemRequest) (*models.ClothingItem, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новую вещь
// @Description Создает вещь гардероба. Владельцем становится текущий пользователь.
// @Tags Items
// @Accept  json
// @Produce  json
// @Param request body models.CreateItemRequest true "Данные новой вещи"
// @Success 201 {object} models.ClothingItem "Созданная вещь"
// @Failure 400 {object} response.Message "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.Message "Пользователь не авторизован"
// @Security BearerAuth
// @Router /items [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	caller, ok := middlewarectx.RequireCaller(w, r, log)
	if !ok {
		return
	}

	item, err := h.service.Create(r.Context(), caller, req)
	if err != nil {
		log.Error("failed to create item", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("item created", slog.String("id", item.ID.String()))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, item)
}
