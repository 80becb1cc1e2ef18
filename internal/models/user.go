// Package models содержит доменные структуры пользователя.
//
// User — публичная проекция без хэша пароля, она сериализуется в ответы API.
// UserCredentials — внутренняя проекция с хэшем, используется только при
// проверке учетных данных и никогда не отдается наружу.
package models

import "github.com/google/uuid"

// User представляет зарегистрированного пользователя системы.
// Хэш пароля в этой структуре отсутствует намеренно.
type User struct {
	ID     uuid.UUID `json:"id"`     // Уникальный идентификатор пользователя
	Name   string    `json:"name"`   // Имя пользователя
	Avatar string    `json:"avatar"` // Ссылка на аватар
	Email  string    `json:"email"`  // Электронная почта (уникальная)
}

// UserCredentials - пользователь вместе с хэшем пароля.
// Загружается единственным запросом при входе, наружу не сериализуется.
type UserCredentials struct {
	User
	PasswordHash string `json:"-"`
}

// SignUpRequest используется для приёма данных регистрации из JSON-запроса.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"required,url"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInRequest используется для приёма учетных данных при входе.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest используется для обновления профиля.
// Менять можно только имя и аватар, почта и пароль здесь недоступны.
type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=30"`
	Avatar string `json:"avatar" validate:"required,url"`
}
