package entity

import "time"

type AccountEventType string

const (
	UserCreated         AccountEventType = "user.created"
	UserRemoved         AccountEventType = "user.removed"
	UserPasswordChanged AccountEventType = "user.password-changed"
)

type AccountEvent struct {
	ID         string           `json:"id"`
	Type       AccountEventType `json:"type"`
	UserID     string           `json:"user_id"`
	Username   string           `json:"username"`
	OccurredAt time.Time        `json:"occurred_at"`
}
