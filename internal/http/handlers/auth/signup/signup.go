// Package signup реализует HTTP-обработчик регистрации пользователей.
//
// Handler принимает JSON с данными нового пользователя, валидирует их,
// делегирует создание сервису аутентификации и возвращает публичную
// проекцию пользователя без пароля. Повтор почты дает 409.
package signup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/wtwr-app/wtwr-backend/internal/http/response"
	"github.com/wtwr-app/wtwr-backend/internal/lib/sl"
	"github.com/wtwr-app/wtwr-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы на регистрацию.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики аутентификации
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, req models.SignUpRequest) (*models.User, error)
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
// @Summary Регистрация пользователя
// @Description Создает новую учетную запись. Пароль в ответ не попадает.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.SignUpRequest true "Данные нового пользователя"
// @Success 201 {object} models.User "Созданный пользователь"
// @Failure 400 {object} response.Message "Некорректный JSON или ошибка валидации"
// @Failure 409 {object} response.Message "Почта уже занята"
// @Router /signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SignUpRequest
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

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("user registered", slog.String("email", user.Email))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, user)
}
