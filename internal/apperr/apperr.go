// Package apperr определяет типизированную иерархию ошибок приложения
// и единственную функцию отображения ошибки в пару (HTTP-статус, сообщение).
//
// Обработчики и сервисы возвращают эти ошибки (возможно, обернутые через
// fmt.Errorf с %w), а переводит их в ответ клиенту только response.Err.
// Внутренние детали ошибки наружу не попадают - только в лог.
package apperr

import (
	"errors"
	"net/http"
)

// Ошибки уровня приложения. Сервисы возвращают их напрямую или оборачивают.
var (
	// ErrBadRequest - некорректный идентификатор или тело запроса.
	ErrBadRequest = errors.New("invalid data")
	// ErrValidation - нарушение ограничений полей при создании или обновлении.
	ErrValidation = errors.New("validation failed")
	// ErrAuth - отсутствующий, некорректный или просроченный токен.
	ErrAuth = errors.New("authorization required")
	// ErrInvalidCredentials - неверная пара email/пароль при входе.
	// Неизвестная почта и неверный пароль снаружи неразличимы.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrForbidden - попытка изменить чужой ресурс.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound - корректный идентификатор, но записи нет.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail - нарушение уникальности почты при регистрации.
	ErrDuplicateEmail = errors.New("email already exists")
)

// Map переводит любую ошибку в HTTP-статус и внешнее сообщение.
// Неизвестные ошибки становятся 500 с универсальным текстом.
func Map(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "Invalid data passed"
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, "Validation failed"
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized, "Authorization required"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "You don't have permission to perform this action"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Requested resource not found"
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict, "A user with this email already exists"
	default:
		return http.StatusInternalServerError, "An error occurred on the server"
	}
}
