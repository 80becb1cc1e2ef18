// Package signin реализует HTTP-обработчик входа пользователей.
//
// Выполняется декодирование JSON, валидация полей и делегирование проверки
// учетных данных сервису аутентификации. При успехе возвращается JWT;
// неверная почта и неверный пароль снаружи неразличимы.
package signin

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

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики аутентификации
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
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
// @Summary Вход пользователя
// @Description Проверяет пару email/пароль и возвращает JWT со сроком жизни 7 дней.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.SignInRequest true "Учетные данные пользователя"
// @Success 200 {object} map[string]string "Токен"
// @Failure 400 {object} response.Message "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.Message "Неверные учетные данные"
// @Router /signin [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SignInRequest
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

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("login success")
	render.JSON(w, r, map[string]string{
		"token": token,
	})
}
