package kafka

import (
	"context"
	"fmt"

	"github.com/OliveiraNt/kafka-utils/internal/config"
	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
)

// ConfigSource provides the connection settings used for the next call.
type ConfigSource interface {
	Current() (config.ClusterConfig, error)
}

// StaticConfig is a ConfigSource that never changes.
type StaticConfig config.ClusterConfig

// Current returns the wrapped configuration.
func (s StaticConfig) Current() (config.ClusterConfig, error) {
	return config.ClusterConfig(s), nil
}

// Gateway implements domain.ClusterGateway with a fresh client per call.
type Gateway struct {
	source  ConfigSource
	factory *Factory
}

// NewGateway creates a new Gateway.
func NewGateway(source ConfigSource, factory *Factory) *Gateway {
	return &Gateway{source: source, factory: factory}
}

var _ domain.ClusterGateway = (*Gateway)(nil)

func (g *Gateway) withAdmin(ctx context.Context, op string, fn func(*Admin) error) error {
	cfg, err := g.source.Current()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrConnection, op, err)
	}
	client, err := g.factory.CreateClient(cfg)
	if err != nil {
		utils.Logger.Error("failed to create kafka client", "operation", op, "err", err)
		return fmt.Errorf("%w: %s: %w", domain.ErrConnection, op, err)
	}
	defer client.Close()

	used := client.GetConfig()
	utils.Logger.Debug("kafka call", "operation", op, "cluster", used.Name, "brokers", used.Brokers, "auth", used.GetAuthType())
	return fn(client.Admin())
}

// ListBrokers returns the brokers sorted by id.
func (g *Gateway) ListBrokers(ctx context.Context) ([]domain.BrokerSummary, error) {
	var brokers []domain.BrokerSummary
	err := g.withAdmin(ctx, "list brokers", func(a *Admin) error {
		var err error
		brokers, err = a.Brokers(ctx)
		return classify("list brokers", err)
	})
	return brokers, err
}

// ListTopics fetches metadata and watermarks and aggregates them into topic summaries.
func (g *Gateway) ListTopics(ctx context.Context) ([]domain.TopicSummary, error) {
	var topics []domain.TopicSummary
	err := g.withAdmin(ctx, "list topics", func(a *Admin) error {
		meta, err := a.TopicMetadata(ctx)
		if err != nil {
			return classify("list topics", err)
		}
		marks := a.Watermarks(ctx, meta)
		topics = domain.SummarizeTopics(meta, marks)
		return nil
	})
	return topics, err
}

// ListTopicNames returns all topic names sorted.
func (g *Gateway) ListTopicNames(ctx context.Context) ([]string, error) {
	var names []string
	err := g.withAdmin(ctx, "list topic names", func(a *Admin) error {
		var err error
		names, err = a.TopicNames(ctx)
		return classify("list topic names", err)
	})
	return names, err
}

// DeleteTopics deletes names, returning one result per name.
func (g *Gateway) DeleteTopics(ctx context.Context, names []string) (domain.DeleteResults, error) {
	if len(names) == 0 {
		return domain.DeleteResults{}, nil
	}
	var results domain.DeleteResults
	err := g.withAdmin(ctx, "delete topics", func(a *Admin) error {
		var err error
		results, err = a.DeleteTopics(ctx, names)
		return classify("delete topics", err)
	})
	return results, err
}

// ListConsumerGroups returns the groups whose name starts with prefix, sorted by name.
func (g *Gateway) ListConsumerGroups(ctx context.Context, prefix string) ([]domain.ConsumerGroupSummary, error) {
	var groups []domain.ConsumerGroupSummary
	err := g.withAdmin(ctx, "list consumer groups", func(a *Admin) error {
		all, err := a.ConsumerGroups(ctx)
		if err != nil {
			return classify("list consumer groups", err)
		}
		groups = domain.FilterGroups(all, prefix)
		return nil
	})
	return groups, err
}

// DeleteConsumerGroups deletes every group whose name starts with prefix. An empty prefix
// matches every group.
func (g *Gateway) DeleteConsumerGroups(ctx context.Context, prefix string) (domain.DeleteResults, error) {
	var results domain.DeleteResults
	err := g.withAdmin(ctx, "delete consumer groups", func(a *Admin) error {
		all, err := a.ConsumerGroups(ctx)
		if err != nil {
			return classify("delete consumer groups", err)
		}
		matched := domain.FilterGroups(all, prefix)
		names := make([]string, 0, len(matched))
		for _, grp := range matched {
			names = append(names, grp.Name)
		}
		results, err = a.DeleteConsumerGroups(ctx, names)
		return classify("delete consumer groups", err)
	})
	return results, err
}
