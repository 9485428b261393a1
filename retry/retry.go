// Package retry re-runs transient remote failures with a growing delay.
package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

const (
	DefaultAttempts = 3
	DefaultDelay    = time.Second
)

// Transient reports whether an error looks like a network-level failure worth
// retrying. Validation and business errors never qualify.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "network") ||
		strings.Contains(msg, "broken pipe")
}

// Do runs fn up to attempts times, sleeping delay, 2*delay, ... between
// tries. Non-transient errors abort immediately.
func Do(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if !Transient(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(delay * time.Duration(i+1)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("retries exhausted: %w", err)
}
