package domain

import (
	"context"
	"time"
)

// ClusterGateway abstracts every call the application makes to a Kafka cluster. Each call
// fetches fresh data; implementations do not cache between calls.
type ClusterGateway interface {
	ListBrokers(ctx context.Context) ([]BrokerSummary, error)
	ListTopics(ctx context.Context) ([]TopicSummary, error)
	ListTopicNames(ctx context.Context) ([]string, error)
	DeleteTopics(ctx context.Context, names []string) (DeleteResults, error)
	ListConsumerGroups(ctx context.Context, prefix string) ([]ConsumerGroupSummary, error)
	DeleteConsumerGroups(ctx context.Context, prefix string) (DeleteResults, error)
}

// Token is a bearer token used for authenticated connections.
type Token struct {
	Value    string
	ExpiryMs int64
}

// TokenProvider produces authentication tokens for a region.
type TokenProvider interface {
	GenerateToken(ctx context.Context, region string) (Token, error)
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context, region string) (Token, error)

// GenerateToken calls f.
func (f TokenProviderFunc) GenerateToken(ctx context.Context, region string) (Token, error) {
	return f(ctx, region)
}

// TokenTimeout is the hard limit for a single token acquisition.
const TokenTimeout = 10 * time.Second
