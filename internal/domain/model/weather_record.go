package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/msg"
)

// WeatherRecord is the last known weather of a favorite location, in imperial units.
type WeatherRecord struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Humidity      int     `json:"humidity"`
}

// ParseWeatherRecord builds a record from raw JSON number literals.
// Temperature, wind speed and precipitation must be written as floats (32.0, not 32) and
// humidity as an integer. The first offending field is reported as InvalidArgument.
func ParseWeatherRecord(temperature, windSpeed, precipitation, humidity json.Number) (WeatherRecord, error) {
	var record WeatherRecord
	var err error

	if record.Temperature, err = parseFloatLiteral("temperature", temperature); err != nil {
		return WeatherRecord{}, err
	}
	if record.WindSpeed, err = parseFloatLiteral("wind_speed", windSpeed); err != nil {
		return WeatherRecord{}, err
	}
	if record.Precipitation, err = parseFloatLiteral("precipitation", precipitation); err != nil {
		return WeatherRecord{}, err
	}
	if record.Humidity, err = strconv.Atoi(humidity.String()); err != nil {
		return WeatherRecord{}, apperr.InvalidArgument(msg.GetMessage("favorites.invalid-int", "humidity", humidity.String()))
	}

	return record, nil
}

func parseFloatLiteral(field string, value json.Number) (float64, error) {
	literal := value.String()
	if !strings.ContainsAny(literal, ".eE") {
		return 0, apperr.InvalidArgument(msg.GetMessage("favorites.invalid-float", field, literal))
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, apperr.InvalidArgument(msg.GetMessage("favorites.invalid-float", field, literal))
	}
	return f, nil
}
