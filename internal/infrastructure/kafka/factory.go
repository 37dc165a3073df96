package kafka

import (
	"github.com/OliveiraNt/kafka-utils/internal/config"
	"github.com/OliveiraNt/kafka-utils/internal/domain"
)

// Factory creates Kafka clients from configuration.
type Factory struct {
	tokens domain.TokenProvider
}

// NewFactory creates a new client factory that signs IAM tokens with tokens.
func NewFactory(tokens domain.TokenProvider) *Factory {
	return &Factory{tokens: tokens}
}

// CreateClient creates a new Kafka client from configuration.
func (f *Factory) CreateClient(cfg config.ClusterConfig) (*Client, error) {
	return NewClient(cfg, f.tokens)
}
