package kafka

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	maxRetries     = 3
	initialBackoff = 500 * time.Millisecond
	maxBackoff     = 4 * time.Second
)

// isAuthError returns true for SASL authentication/authorization failures and token
// acquisition failures. Retrying will not help.
func isAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrAuthToken) {
		return true
	}

	var ke *kerr.Error
	if errors.As(err, &ke) {
		switch ke {
		case kerr.SaslAuthenticationFailed,
			kerr.UnsupportedSaslMechanism,
			kerr.IllegalSaslState,
			kerr.TopicAuthorizationFailed,
			kerr.ClusterAuthorizationFailed,
			kerr.GroupAuthorizationFailed:
			return true
		}
	}

	var eof *kgo.ErrFirstReadEOF
	return errors.As(err, &eof)
}

// isRetryable returns true for transient broker errors: timeouts, broker restarts,
// temporary leader unavailability.
func isRetryable(err error) bool {
	if err == nil || isAuthError(err) {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var ke *kerr.Error
	if errors.As(err, &ke) {
		return ke.Retriable
	}

	if errors.Is(err, net.ErrClosed) {
		return true
	}

	// dial timeouts are retryable, connection refused is not
	var ne *net.OpError
	if errors.As(err, &ne) {
		return ne.Timeout()
	}

	return false
}

// isDialError returns true when no broker could be reached: refused or unreachable
// addresses, failed name resolution and dial timeouts.
func isDialError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var ne *net.OpError
	if errors.As(err, &ne) && ne.Op == "dial" {
		return true
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// withRetry executes fn up to maxRetries+1 times with exponential backoff.
func withRetry(ctx context.Context, desc string, fn func() error) error {
	backoff := initialBackoff

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
		if attempt == maxRetries {
			break
		}

		utils.Logger.Warn("retrying after transient error",
			"operation", desc,
			"attempt", attempt+1,
			"max_attempts", maxRetries+1,
			"backoff", backoff,
			"err", lastErr,
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w (last error: %w)", desc, ctx.Err(), lastErr)
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return fmt.Errorf("%s: %d attempts exhausted: %w", desc, maxRetries+1, lastErr)
}

// classify maps a failed remote call onto the error taxonomy: unreachable brokers and
// authentication problems are connection errors, everything else is a fetch error.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isAuthError(err) || isDialError(err) {
		return fmt.Errorf("%w: %s: %w", domain.ErrConnection, op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrFetch, op, err)
}
