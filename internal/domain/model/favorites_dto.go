package model

import "encoding/json"

// AddFavoriteDTO is the body of add-favorite. When all weather fields are present they are
// validated and stored as given; otherwise current weather is fetched from the provider.
type AddFavoriteDTO struct {
	Location      string       `json:"location" validate:"required"`
	Temperature   *json.Number `json:"temperature,omitempty"`
	WindSpeed     *json.Number `json:"wind_speed,omitempty"`
	Precipitation *json.Number `json:"precipitation,omitempty"`
	Humidity      *json.Number `json:"humidity,omitempty"`
}

// HasWeather reports whether any weather field was supplied.
func (d AddFavoriteDTO) HasWeather() bool {
	return d.Temperature != nil || d.WindSpeed != nil || d.Precipitation != nil || d.Humidity != nil
}
