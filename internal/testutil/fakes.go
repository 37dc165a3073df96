package testutil

import (
	"context"
	"sync"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
)

// FakeGateway is a test double implementing domain.ClusterGateway with configurable
// responses. It records every call it receives.
type FakeGateway struct {
	mu sync.Mutex

	Brokers []domain.BrokerSummary
	Topics  []domain.TopicSummary
	Groups  []domain.ConsumerGroupSummary

	// DeleteErrs maps a topic or group name to the error its deletion reports.
	DeleteErrs map[string]error

	BrokersErr error
	TopicsErr  error
	GroupsErr  error
	DeleteErr  error

	ListTopicsCalls   int
	DeleteTopicsCalls [][]string
	DeleteGroupsCalls []string
}

// NewFakeGateway creates an empty FakeGateway.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{DeleteErrs: map[string]error{}}
}

var _ domain.ClusterGateway = (*FakeGateway)(nil)

func (f *FakeGateway) ListBrokers(_ context.Context) ([]domain.BrokerSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.BrokersErr != nil {
		return nil, f.BrokersErr
	}
	out := append([]domain.BrokerSummary(nil), f.Brokers...)
	domain.SortBrokers(out)
	return out, nil
}

func (f *FakeGateway) ListTopics(_ context.Context) ([]domain.TopicSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListTopicsCalls++
	if f.TopicsErr != nil {
		return nil, f.TopicsErr
	}
	out := append([]domain.TopicSummary(nil), f.Topics...)
	domain.SortTopics(out)
	return out, nil
}

func (f *FakeGateway) ListTopicNames(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.TopicsErr != nil {
		return nil, f.TopicsErr
	}
	names := make([]string, 0, len(f.Topics))
	for _, t := range f.Topics {
		names = append(names, t.Name)
	}
	return domain.FilterNames(names, ""), nil
}

func (f *FakeGateway) DeleteTopics(_ context.Context, names []string) (domain.DeleteResults, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteTopicsCalls = append(f.DeleteTopicsCalls, append([]string(nil), names...))
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	return f.results(names), nil
}

func (f *FakeGateway) ListConsumerGroups(_ context.Context, prefix string) ([]domain.ConsumerGroupSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GroupsErr != nil {
		return nil, f.GroupsErr
	}
	return domain.FilterGroups(f.Groups, prefix), nil
}

func (f *FakeGateway) DeleteConsumerGroups(_ context.Context, prefix string) (domain.DeleteResults, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteGroupsCalls = append(f.DeleteGroupsCalls, prefix)
	if f.GroupsErr != nil {
		return nil, f.GroupsErr
	}
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	matched := domain.FilterGroups(f.Groups, prefix)
	names := make([]string, 0, len(matched))
	for _, g := range matched {
		names = append(names, g.Name)
	}
	return f.results(names), nil
}

func (f *FakeGateway) results(names []string) domain.DeleteResults {
	out := make(domain.DeleteResults, 0, len(names))
	for _, n := range names {
		out = append(out, domain.DeleteResult{Name: n, Err: f.DeleteErrs[n]})
	}
	return out
}
