package kafka

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/twmb/franz-go/pkg/kadm"
)

var errNoResponse = errors.New("no response from broker")

type Admin struct {
	client  *kadm.Client
	timeout time.Duration
}

// NewAdmin creates a new Admin whose requests are each bounded by timeout.
func NewAdmin(client *kadm.Client, timeout time.Duration) *Admin {
	return &Admin{client: client, timeout: timeout}
}

// Brokers returns the brokers advertised in cluster metadata.
func (a *Admin) Brokers(ctx context.Context) ([]domain.BrokerSummary, error) {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var meta kadm.Metadata
	err := withRetry(cctx, "fetch broker metadata", func() error {
		var metaErr error
		meta, metaErr = a.client.BrokerMetadata(cctx)
		return metaErr
	})
	if err != nil {
		return nil, err
	}

	brokers := make([]domain.BrokerSummary, 0, len(meta.Brokers))
	for _, b := range meta.Brokers {
		brokers = append(brokers, domain.BrokerSummary{ID: b.NodeID, Host: b.Host, Port: b.Port})
	}
	domain.SortBrokers(brokers)
	return brokers, nil
}

// TopicMetadata returns partition and replica metadata for every topic, internal ones
// included.
func (a *Admin) TopicMetadata(ctx context.Context) ([]domain.TopicMetadata, error) {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var details kadm.TopicDetails
	err := withRetry(cctx, "list topics", func() error {
		var listErr error
		details, listErr = a.client.ListTopicsWithInternal(cctx)
		return listErr
	})
	if err != nil {
		return nil, err
	}
	return toTopicMetadata(details), nil
}

// Watermarks fetches the low and high offsets of every partition of topics. It never fails:
// a failed request marks the affected partitions as failed instead.
func (a *Admin) Watermarks(ctx context.Context, topics []domain.TopicMetadata) domain.Watermarks {
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		if len(t.Partitions) > 0 {
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		return domain.Watermarks{}
	}

	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start, startErr := a.client.ListStartOffsets(cctx, names...)
	if startErr != nil {
		utils.Logger.Warn("list start offsets failed", "topics", len(names), "err", startErr)
	}
	end, endErr := a.client.ListEndOffsets(cctx, names...)
	if endErr != nil {
		utils.Logger.Warn("list end offsets failed", "topics", len(names), "err", endErr)
	}
	return toWatermarks(topics, start, end)
}

// TopicNames returns every topic name, sorted.
func (a *Admin) TopicNames(ctx context.Context) ([]string, error) {
	topics, err := a.TopicMetadata(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names, nil
}

// DeleteTopics deletes names and reports one result per requested name.
func (a *Admin) DeleteTopics(ctx context.Context, names []string) (domain.DeleteResults, error) {
	if len(names) == 0 {
		return domain.DeleteResults{}, nil
	}

	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.DeleteTopics(cctx, names...)
	if err != nil {
		return nil, err
	}
	return toTopicDeleteResults(names, resp), nil
}

// ConsumerGroups lists every group known to the cluster.
func (a *Admin) ConsumerGroups(ctx context.Context) ([]domain.ConsumerGroupSummary, error) {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var listed kadm.ListedGroups
	err := withRetry(cctx, "list consumer groups", func() error {
		var listErr error
		listed, listErr = a.client.ListGroups(cctx)
		return listErr
	})
	if err != nil {
		return nil, err
	}

	groups := make([]domain.ConsumerGroupSummary, 0, len(listed))
	for name, g := range listed {
		groups = append(groups, domain.ConsumerGroupSummary{Name: name, State: g.State})
	}
	return groups, nil
}

// DeleteConsumerGroups deletes names and reports one result per requested name.
func (a *Admin) DeleteConsumerGroups(ctx context.Context, names []string) (domain.DeleteResults, error) {
	if len(names) == 0 {
		return domain.DeleteResults{}, nil
	}

	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.DeleteGroups(cctx, names...)
	if err != nil {
		return nil, err
	}
	return toGroupDeleteResults(names, resp), nil
}

func toTopicMetadata(details kadm.TopicDetails) []domain.TopicMetadata {
	out := make([]domain.TopicMetadata, 0, len(details))
	for name, d := range details {
		t := domain.TopicMetadata{Name: name, Partitions: make([]domain.PartitionMetadata, 0, len(d.Partitions))}
		for id, p := range d.Partitions {
			t.Partitions = append(t.Partitions, domain.PartitionMetadata{ID: id, Replicas: p.Replicas})
		}
		sort.Slice(t.Partitions, func(i, j int) bool { return t.Partitions[i].ID < t.Partitions[j].ID })
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func toWatermarks(topics []domain.TopicMetadata, start, end kadm.ListedOffsets) domain.Watermarks {
	marks := domain.Watermarks{}
	for _, t := range topics {
		for _, p := range t.Partitions {
			lo, okLo := start[t.Name][p.ID]
			hi, okHi := end[t.Name][p.ID]
			switch {
			case !okLo || !okHi:
				marks.Set(t.Name, p.ID, domain.WatermarkResult{Err: errNoResponse})
			case lo.Err != nil:
				marks.Set(t.Name, p.ID, domain.WatermarkResult{Err: lo.Err})
			case hi.Err != nil:
				marks.Set(t.Name, p.ID, domain.WatermarkResult{Err: hi.Err})
			default:
				marks.Set(t.Name, p.ID, domain.WatermarkResult{Watermark: domain.Watermark{Low: lo.Offset, High: hi.Offset}})
			}
		}
	}
	return marks
}

func toTopicDeleteResults(names []string, resp kadm.DeleteTopicResponses) domain.DeleteResults {
	out := make(domain.DeleteResults, 0, len(names))
	for _, name := range names {
		r, ok := resp[name]
		switch {
		case !ok:
			out = append(out, domain.DeleteResult{Name: name, Err: errNoResponse})
		default:
			out = append(out, domain.DeleteResult{Name: name, Err: r.Err})
		}
	}
	return out
}

func toGroupDeleteResults(names []string, resp kadm.DeleteGroupResponses) domain.DeleteResults {
	out := make(domain.DeleteResults, 0, len(names))
	for _, name := range names {
		r, ok := resp[name]
		if !ok {
			out = append(out, domain.DeleteResult{Name: name, Err: errNoResponse})
			continue
		}
		out = append(out, domain.DeleteResult{Name: name, Err: r.Err})
	}
	return out
}
