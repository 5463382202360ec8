package model

import (
	"encoding/json"

	"weather-favorites/pkg/apperr"
)

const (
	FailedStatus = "failed"
	// UnhandledException tags a per-item failure inside a batch result.
	UnhandledException = "UnhandledException"
)

// Failure is the soft-fail payload returned in place of a value.
type Failure struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewFailure(code, message string) *Failure {
	return &Failure{Status: FailedStatus, Error: code, Message: message}
}

// Result holds either a value or a Failure for one item of a batch.
type Result[T any] struct {
	Value   T
	Failure *Failure
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Failed[T any](failure *Failure) Result[T] {
	return Result[T]{Failure: failure}
}

func (r Result[T]) Failed() bool {
	return r.Failure != nil
}

// MarshalJSON writes the failure payload when present, the value otherwise.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(r.Failure)
	}
	return json.Marshal(r.Value)
}

// ProviderFailurePayload renders a provider soft failure as a Failure.
func ProviderFailurePayload(f *apperr.ProviderFailure) *Failure {
	return NewFailure(f.ErrorCode(), f.Message)
}
