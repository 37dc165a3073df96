package application

import (
	"context"
	"errors"
	"testing"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/testutil"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/stretchr/testify/require"
)

func newTopicGateway() *testutil.FakeGateway {
	gw := testutil.NewFakeGateway()
	gw.Topics = []domain.TopicSummary{
		{Name: "orders-v2", Partitions: 3},
		{Name: "orders-v1", Partitions: 1},
		{Name: "payments", Partitions: 6},
		{Name: "Orders-legacy", Partitions: 1},
	}
	return gw
}

func TestTopicService_ListTopics(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	gw := newTopicGateway()
	svc := NewTopicService(NewClusterService(gw))

	topics, err := svc.ListTopics(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 4)
	require.Equal(t, "Orders-legacy", topics[0].Name)

	gw.TopicsErr = domain.ErrFetch
	_, err = svc.ListTopics(context.Background())
	require.ErrorIs(t, err, domain.ErrFetch)
}

func TestTopicService_ListTopicNames(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	svc := NewTopicService(NewClusterService(newTopicGateway()))

	names, err := svc.ListTopicNames(context.Background(), "orders")
	require.NoError(t, err)
	require.Equal(t, []string{"orders-v1", "orders-v2"}, names)

	all, err := svc.ListTopicNames(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestTopicService_DeleteDryRunMatchesRun(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	gw := newTopicGateway()
	svc := NewTopicService(NewClusterService(gw))

	dry, err := svc.DeleteTopics(context.Background(), "orders", false)
	require.NoError(t, err)
	require.True(t, dry.DryRun)
	require.Empty(t, gw.DeleteTopicsCalls)
	require.Empty(t, dry.Results)

	run, err := svc.DeleteTopics(context.Background(), "orders", true)
	require.NoError(t, err)
	require.False(t, run.DryRun)
	require.Equal(t, dry.Candidates, run.Candidates)
	require.Len(t, gw.DeleteTopicsCalls, 1)
	require.Equal(t, dry.Candidates, gw.DeleteTopicsCalls[0])
}

func TestTopicService_DeleteReportsFailures(t *testing.T) {
	t.Parallel()
	utils.InitLogger()
	gw := newTopicGateway()
	gw.DeleteErrs["orders-v2"] = errors.New("not authorized")
	svc := NewTopicService(NewClusterService(gw))

	res, err := svc.DeleteTopics(context.Background(), "orders", true)
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	failures := res.Results.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, "orders-v2", failures[0].Name)

	gw.DeleteErr = domain.ErrConnection
	_, err = svc.DeleteTopics(context.Background(), "orders", true)
	require.ErrorIs(t, err, domain.ErrConnection)

	gw.TopicsErr = domain.ErrFetch
	_, err = svc.DeleteTopics(context.Background(), "orders", true)
	require.ErrorIs(t, err, domain.ErrFetch)
	require.Len(t, gw.DeleteTopicsCalls, 2)
}
