package external

// LocationDTO is the location block shared by every weatherapi.com response
type LocationDTO struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	TzID    string  `json:"tz_id"`
}

// CurrentDTO holds current conditions in imperial units
type CurrentDTO struct {
	TempF      float64 `json:"temp_f"`
	WindMph    float64 `json:"wind_mph"`
	PrecipIn   float64 `json:"precip_in"`
	Humidity   float64 `json:"humidity"`
	LastUpdate string  `json:"last_updated"`
}

// CurrentResponse is returned by current.json
type CurrentResponse struct {
	Location LocationDTO `json:"location"`
	Current  *CurrentDTO `json:"current"`
}

// DayDTO aggregates a whole day
type DayDTO struct {
	MaxTempF      float64 `json:"maxtemp_f"`
	MinTempF      float64 `json:"mintemp_f"`
	AvgTempF      float64 `json:"avgtemp_f"`
	MaxWindMph    float64 `json:"maxwind_mph"`
	TotalPrecipIn float64 `json:"totalprecip_in"`
	AvgHumidity   float64 `json:"avghumidity"`
}

// ForecastDayDTO is one entry of forecast.forecastday
type ForecastDayDTO struct {
	Date string `json:"date"`
	Day  DayDTO `json:"day"`
}

// ForecastDTO wraps the forecast days
type ForecastDTO struct {
	ForecastDay []ForecastDayDTO `json:"forecastday"`
}

// ForecastResponse is returned by forecast.json and history.json
type ForecastResponse struct {
	Location LocationDTO  `json:"location"`
	Forecast *ForecastDTO `json:"forecast"`
}

// AlertDTO is a single provider alert, kept as raw fields
type AlertDTO map[string]any

// AlertsDTO wraps the alert list. Alert is nil when the key is absent, and points to an empty
// slice for "alert": [].
type AlertsDTO struct {
	Alert *[]AlertDTO `json:"alert"`
}

// AlertsResponse is returned by alerts.json. Alerts is nil when the section is absent.
type AlertsResponse struct {
	Location LocationDTO `json:"location"`
	Alerts   *AlertsDTO  `json:"alerts"`
}

// TimezoneResponse is returned by timezone.json
type TimezoneResponse struct {
	Location *LocationDTO `json:"location"`
}

// APIErrorResponse represents error responses from weatherapi.com
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
