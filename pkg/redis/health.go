package redis

import (
	"context"
	"fmt"
	"time"
)

const healthCheckKey = "health_check_test"

// HealthCheck verifies connectivity and a set/get/delete round trip.
func HealthCheck(ctx context.Context, client *Client) error {
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	testValue := fmt.Sprintf("%d", time.Now().UnixNano())
	if err := client.Set(ctx, healthCheckKey, testValue, time.Minute); err != nil {
		return fmt.Errorf("set operation failed: %w", err)
	}

	value, err := client.Get(ctx, healthCheckKey)
	if err != nil {
		return fmt.Errorf("get operation failed: %w", err)
	}
	if value != testValue {
		return fmt.Errorf("value mismatch: expected %s, got %s", testValue, value)
	}

	if err := client.Delete(ctx, healthCheckKey); err != nil {
		return fmt.Errorf("delete operation failed: %w", err)
	}
	return nil
}
