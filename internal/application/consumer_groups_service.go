package application

import (
	"context"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
)

type ConsumerGroupsService struct {
	gw domain.ClusterGateway
}

func NewConsumerGroupsService(clusterService *ClusterService) *ConsumerGroupsService {
	return &ConsumerGroupsService{gw: clusterService.gateway()}
}

// ListConsumerGroups lists the groups whose name starts with prefix.
func (s *ConsumerGroupsService) ListConsumerGroups(ctx context.Context, prefix string) ([]domain.ConsumerGroupSummary, error) {
	groups, err := s.gw.ListConsumerGroups(ctx, prefix)
	if err != nil {
		utils.Logger.Error("list consumer groups failed", "prefix", prefix, "err", err)
		return nil, err
	}
	return groups, nil
}

// DeleteConsumerGroups deletes every group whose name starts with prefix; an empty prefix
// deletes all groups.
func (s *ConsumerGroupsService) DeleteConsumerGroups(ctx context.Context, prefix string) (domain.DeleteResults, error) {
	if prefix == "" {
		utils.Logger.Warn("deleting every consumer group")
	}
	results, err := s.gw.DeleteConsumerGroups(ctx, prefix)
	if err != nil {
		utils.Logger.Error("delete consumer groups failed", "prefix", prefix, "err", err)
		return nil, err
	}
	for _, r := range results.Failures() {
		utils.Logger.Warn("consumer group not deleted", "group", r.Name, "err", r.Err)
	}
	return results, nil
}
