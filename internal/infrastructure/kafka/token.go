package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/aws/aws-msk-iam-sasl-signer-go/signer"
)

// IAMTokenProvider signs MSK IAM tokens with the default AWS credential chain.
type IAMTokenProvider struct{}

// GenerateToken signs a token for region.
func (IAMTokenProvider) GenerateToken(ctx context.Context, region string) (domain.Token, error) {
	token, expiryMs, err := signer.GenerateAuthToken(ctx, region)
	if err != nil {
		return domain.Token{}, err
	}
	return domain.Token{Value: token, ExpiryMs: expiryMs}, nil
}

// AcquireToken asks p for a token and gives up after domain.TokenTimeout, even when the
// provider ignores its context.
func AcquireToken(ctx context.Context, p domain.TokenProvider, region string) (domain.Token, error) {
	return acquireToken(ctx, p, region, domain.TokenTimeout)
}

func acquireToken(ctx context.Context, p domain.TokenProvider, region string, limit time.Duration) (domain.Token, error) {
	if p == nil {
		return domain.Token{}, fmt.Errorf("%w: no token provider configured", domain.ErrAuthToken)
	}

	cctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	type result struct {
		token domain.Token
		err   error
	}
	done := make(chan result, 1)
	go func() {
		tok, err := p.GenerateToken(cctx, region)
		done <- result{token: tok, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return domain.Token{}, fmt.Errorf("%w: region %s: %w", domain.ErrAuthToken, region, r.err)
		}
		return r.token, nil
	case <-cctx.Done():
		return domain.Token{}, fmt.Errorf("%w: region %s: %w", domain.ErrAuthToken, region, cctx.Err())
	}
}
