package model

import "encoding/json"

// HistoricalReport maps an ISO date (YYYY-MM-DD) to the weather of that day.
type HistoricalReport map[string]WeatherRecord

// ForecastReport is the forecast of the day after the request day.
type ForecastReport struct {
	Date           string  `json:"date"`
	MaxTemperature float64 `json:"max_temperature"`
	MinTemperature float64 `json:"min_temperature"`
}

// AlertReport carries the provider alerts. A report without alerts marshals to {"alert":"none"}.
type AlertReport struct {
	Alerts []map[string]any
	None   bool
}

func (r AlertReport) MarshalJSON() ([]byte, error) {
	if r.None {
		return json.Marshal(map[string]string{"alert": "none"})
	}
	alerts := r.Alerts
	if alerts == nil {
		alerts = []map[string]any{}
	}
	return json.Marshal(alerts)
}

// CoordinateReport is the position of a location.
type CoordinateReport struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
