// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Все ошибки сервера имеют
// единую форму {"message": "..."} и проходят через единственную точку
// трансляции Err, использующую таксономию пакета apperr.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/wtwr-app/wtwr-backend/internal/apperr"
)

// Message описывает стандартную структуру JSON‑ответа с сообщением.
// Используется для всех ошибок и служебных ответов.
type Message struct {
	Message string `json:"message" example:"Requested resource not found"`
}

// Error возвращает тело ответа с переданным сообщением.
func Error(msg string) Message {
	return Message{Message: msg}
}

// Err - единственная точка трансляции ошибок в HTTP-ответ.
// Статус и внешнее сообщение определяются таксономией apperr,
// внутренние детали ошибки клиенту не отдаются.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apperr.Map(err)
	w.WriteHeader(status)
	render.JSON(w, r, Error(msg))
}

// ValidationError формирует тело ответа на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Message {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("the minimum length of the %s field is %s", err.Field(), err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("the maximum length of the %s field is %s", err.Field(), err.Param()))
		case "url":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid URL", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return Message{Message: strings.Join(errsMsgs, ", ")}
}
