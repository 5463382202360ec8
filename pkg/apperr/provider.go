package apperr

import (
	"errors"
	"fmt"
	"strconv"
)

// Cause tells why an outbound provider call failed.
type Cause string

const (
	CauseTimeout     Cause = "timeout"
	CauseStatus      Cause = "status"
	CauseMalformed   Cause = "malformed"
	CauseCircuitOpen Cause = "circuit_open"
	CauseTransport   Cause = "transport"
)

// ProviderFailure is a soft failure of the weather provider. Callers render it as a payload
// with status "failed" instead of a transport error.
type ProviderFailure struct {
	Cause      Cause
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (f *ProviderFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", f.Cause, f.Message, f.Err)
	}
	return fmt.Sprintf("provider %s: %s", f.Cause, f.Message)
}

func (f *ProviderFailure) Unwrap() error {
	return f.Err
}

// ErrorCode is the value exposed in the payload "error" field: the provider's own code when it
// sent one, the HTTP status otherwise, or the cause.
func (f *ProviderFailure) ErrorCode() string {
	switch {
	case f.Code != "":
		return f.Code
	case f.StatusCode != 0:
		return strconv.Itoa(f.StatusCode)
	default:
		return string(f.Cause)
	}
}

// AsProviderFailure extracts a *ProviderFailure from err.
func AsProviderFailure(err error) (*ProviderFailure, bool) {
	var f *ProviderFailure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
