package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	Status     HealthStatus                     `json:"status"`
	Components map[string]ComponentHealthStatus `json:"components"`
}

// Up builds an UP component with the given details
func Up(details map[string]string) ComponentHealthStatus {
	return ComponentHealthStatus{Status: StatusUp, Details: details}
}

// Down builds a DOWN component carrying the error message
func Down(err error) ComponentHealthStatus {
	return ComponentHealthStatus{Status: StatusDown, Details: map[string]string{"message": err.Error()}}
}
