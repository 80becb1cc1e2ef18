// Package models содержит доменную модель вещи гардероба,
// используемую в бизнес-логике и при работе с хранилищем.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Погодные категории вещи. Другие значения не допускаются.
const (
	WeatherHot  = "hot"
	WeatherWarm = "warm"
	WeatherCold = "cold"
)

// ClothingItem представляет вещь гардероба.
// Owner задается при создании и больше не меняется.
// Likes - множество пользователей, отметивших вещь, без дубликатов.
type ClothingItem struct {
	ID        uuid.UUID   `json:"id"`        // Уникальный идентификатор вещи
	Name      string      `json:"name"`      // Название вещи
	Weather   string      `json:"weather"`   // Погодная категория: hot, warm или cold
	ImageURL  string      `json:"imageUrl"`  // Ссылка на изображение
	Owner     uuid.UUID   `json:"owner"`     // Владелец вещи
	Likes     []uuid.UUID `json:"likes"`     // Пользователи, отметившие вещь
	CreatedAt time.Time   `json:"createdAt"` // Дата создания
}

// CreateItemRequest используется для приёма данных новой вещи из JSON-запроса.
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Weather  string `json:"weather" validate:"required,oneof=hot warm cold"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}
