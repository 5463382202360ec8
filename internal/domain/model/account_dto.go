package model

// CredentialsDTO is the body of create-user, change-password and login.
type CredentialsDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UsernameDTO is the body of remove-user.
type UsernameDTO struct {
	Username string `json:"username" validate:"required"`
}

// LoginResult is the verdict of a credential check. A mismatch is not an error.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// StatusResponse is the generic success body.
type StatusResponse struct {
	Status   string `json:"status"`
	Username string `json:"username,omitempty"`
	Location string `json:"location,omitempty"`
	UserID   string `json:"user_id,omitempty"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
