package http

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls retries of transient failures (transport errors, 429 and 5xx responses).
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// DecodeError is returned when a 2xx body cannot be decoded into the success response.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response with status %d: %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrCircuitOpen is returned while the client circuit breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type attemptResult struct {
	successResp any
	errorResp   any
	status      int
	err         error
}

// doRequestWithBackoff executes doRequest, retrying transient failures with exponential delay.
// The request backoff overrides the client default. Each attempt goes through the circuit breaker
// when one is configured; only transient failures count against it.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.backoff
	}
	if ctx == nil {
		ctx = context.Background()
	}

	attempt := 0
	for {
		result := hc.attempt(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		if result.err == nil || !isRetryable(result.err) || backoff == nil || attempt >= backoff.MaxRetries {
			return result.successResp, result.errorResp, result.status, result.err
		}

		delay := backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if backoff.MaxInterval > 0 && delay > backoff.MaxInterval {
			delay = backoff.MaxInterval
		}

		attempt++
		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, redactURL(hc.buildURL(path)), headers, bodyString(body), result.status, "", 0, result.err, attempt, backoff.MaxRetries)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, result.status, ctx.Err()
		case <-timer.C:
		}
	}
}

func (hc *Client) attempt(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) attemptResult {
	if hc.breaker == nil {
		s, e, status, err := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		return attemptResult{successResp: s, errorResp: e, status: status, err: err}
	}

	var result attemptResult
	_, cbErr := hc.breaker.Execute(func() (interface{}, error) {
		s, e, status, err := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		result = attemptResult{successResp: s, errorResp: e, status: status, err: err}
		if err != nil && isBreakerFailure(err) {
			return nil, err
		}
		return nil, nil
	})

	if errors.Is(cbErr, gobreaker.ErrOpenState) || errors.Is(cbErr, gobreaker.ErrTooManyRequests) {
		return attemptResult{err: fmt.Errorf("%w: %v", ErrCircuitOpen, cbErr)}
	}
	return result
}

// isBreakerFailure reports whether err counts against the circuit. Timeouts count even though
// they are not retried, so that a hanging upstream trips the breaker.
func isBreakerFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return isRetryable(err)
}

// isRetryable reports whether err is worth another attempt.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrCircuitOpen) {
		return false
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError
	}

	return true
}
