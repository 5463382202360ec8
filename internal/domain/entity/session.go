package entity

import (
	"time"

	"weather-favorites/internal/domain/model"
)

// Session persists the favorites of a user between login and logout.
type Session struct {
	UserID    string                         `json:"user_id"`
	Favorites map[string]model.WeatherRecord `json:"favorites"`
	UpdatedAt time.Time                      `json:"updated_at"`
}
