package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestRequest_DecodesSuccessAndEncodesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/current.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{DefaultQueryParams: map[string]string{"key": "secret"}})

	resp, errResp, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("current.json").
		WithQueryParams(map[string]string{"q": "New York"}).
		WithSuccessResp(&payload{}).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp.(*payload).Name)
	assert.Equal(t, "key=secret&q=New+York", gotQuery)
}

func TestRequest_ErrorResponseIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{Backoff: &BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond}})

	_, errResp, status, err := client.Request().WithPath("/current.json").WithSuccessResp(&payload{}).WithErrorResp(&apiError{}).Execute()

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 1006, errResp.(*apiError).Error.Code)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestRequest_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"third"}`))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{})

	resp, _, status, err := client.Request().
		WithPath("/retry").
		WithSuccessResp(&payload{}).
		WithBackoff(&BackoffConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "third", resp.(*payload).Name)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestRequest_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer srv.Close()

	_, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithPath("/x").WithSuccessResp(&payload{}).Execute()

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
}

func TestRequest_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithContext(ctx).WithPath("/slow").Execute()

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRequest_CircuitBreakerOpens(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{CircuitBreaker: &gobreaker.Settings{
		Name:    "test",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	}})

	_, _, _, err := client.Request().WithPath("/down").Execute()
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)

	_, _, _, err = client.Request().WithPath("/down").Execute()
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestRequest_TimeoutsTripCircuitBreaker(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL, ClientOptions{CircuitBreaker: &gobreaker.Settings{
		Name:    "test",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}})

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		_, _, _, err := client.Request().WithContext(ctx).WithPath("/slow").Execute()
		cancel()
		require.ErrorIs(t, err, context.DeadlineExceeded)
	}

	_, _, _, err := client.Request().WithPath("/slow").Execute()
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestIsBreakerFailure(t *testing.T) {
	assert.True(t, isBreakerFailure(context.DeadlineExceeded))
	assert.True(t, isBreakerFailure(&StatusError{StatusCode: http.StatusBadGateway}))
	assert.False(t, isBreakerFailure(context.Canceled))
	assert.False(t, isBreakerFailure(&StatusError{StatusCode: http.StatusBadRequest}))
	assert.False(t, isRetryable(context.DeadlineExceeded))
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "http://api/current.json?key=%2A%2A%2A&q=Boston", redactURL("http://api/current.json?key=abc&q=Boston"))
}
