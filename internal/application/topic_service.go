package application

import (
	"context"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
)

// TopicDeletion is the outcome of a prefix delete. Results is empty for a dry run.
type TopicDeletion struct {
	Candidates []string             `json:"candidates"`
	DryRun     bool                 `json:"dry_run"`
	Results    domain.DeleteResults `json:"-"`
}

// TopicService handles topic-related business operations.
type TopicService struct {
	gw domain.ClusterGateway
}

// NewTopicService creates a new topic service.
func NewTopicService(clusterService *ClusterService) *TopicService {
	return &TopicService{gw: clusterService.gateway()}
}

// ListTopics retrieves all topic summaries sorted by name.
func (s *TopicService) ListTopics(ctx context.Context) ([]domain.TopicSummary, error) {
	topics, err := s.gw.ListTopics(ctx)
	if err != nil {
		utils.Logger.Error("list topics failed", "err", err)
		return nil, err
	}
	return topics, nil
}

// ListTopicNames retrieves the names of the topics starting with prefix.
func (s *TopicService) ListTopicNames(ctx context.Context, prefix string) ([]string, error) {
	names, err := s.gw.ListTopicNames(ctx)
	if err != nil {
		utils.Logger.Error("list topic names failed", "prefix", prefix, "err", err)
		return nil, err
	}
	return domain.FilterNames(names, prefix), nil
}

// DeleteTopics resolves the topics starting with prefix and, when run is true, deletes
// them. Without run nothing is mutated and only the candidates are returned.
func (s *TopicService) DeleteTopics(ctx context.Context, prefix string, run bool) (TopicDeletion, error) {
	candidates, err := s.ListTopicNames(ctx, prefix)
	if err != nil {
		return TopicDeletion{}, err
	}

	out := TopicDeletion{Candidates: candidates, DryRun: !run}
	if !run {
		utils.Logger.Info("dry run topic delete", "prefix", prefix, "candidates", len(candidates))
		return out, nil
	}

	results, err := s.gw.DeleteTopics(ctx, candidates)
	if err != nil {
		utils.Logger.Error("delete topics failed", "prefix", prefix, "err", err)
		return out, err
	}
	for _, r := range results.Failures() {
		utils.Logger.Warn("topic not deleted", "topic", r.Name, "err", r.Err)
	}
	utils.Logger.Info("topics deleted", "prefix", prefix, "requested", len(candidates), "failed", len(results.Failures()))
	out.Results = results
	return out, nil
}
