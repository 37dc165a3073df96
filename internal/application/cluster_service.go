package application

import (
	"context"

	"github.com/OliveiraNt/kafka-utils/internal/config"
	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
)

// ClusterService provides cluster-level operations.
type ClusterService struct {
	gw domain.ClusterGateway
}

// NewClusterService creates a new cluster service.
func NewClusterService(gw domain.ClusterGateway) *ClusterService {
	return &ClusterService{gw: gw}
}

func (s *ClusterService) gateway() domain.ClusterGateway {
	return s.gw
}

// ListBrokers lists the brokers of the cluster sorted by id.
func (s *ClusterService) ListBrokers(ctx context.Context) ([]domain.BrokerSummary, error) {
	brokers, err := s.gw.ListBrokers(ctx)
	if err != nil {
		utils.Logger.Error("list brokers failed", "err", err)
		return nil, err
	}
	return brokers, nil
}

// ValidateConnection checks that cfg names at least one bootstrap server.
func ValidateConnection(cfg config.ClusterConfig) error {
	if len(cfg.Brokers) == 0 {
		return ErrInvalidConnection
	}
	return nil
}
