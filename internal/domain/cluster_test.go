package domain_test

import (
	"testing"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFilterGroups_CaseSensitivePrefix(t *testing.T) {
	t.Parallel()
	groups := []domain.ConsumerGroupSummary{
		{Name: "payments-v1", State: "Stable"},
		{Name: "orders", State: "Empty"},
		{Name: "Payments-v2", State: "Stable"},
	}

	require.Equal(t, []domain.ConsumerGroupSummary{{Name: "payments-v1", State: "Stable"}}, domain.FilterGroups(groups, "payments"))
	require.Equal(t, []domain.ConsumerGroupSummary{{Name: "Payments-v2", State: "Stable"}}, domain.FilterGroups(groups, "Payments"))
	require.Empty(t, domain.FilterGroups(groups, "v1"))
}

func TestFilterGroups_EmptyPrefixKeepsAllSorted(t *testing.T) {
	t.Parallel()
	groups := []domain.ConsumerGroupSummary{{Name: "b"}, {Name: "a"}, {Name: "c"}}
	got := domain.FilterGroups(groups, "")
	require.Equal(t, []domain.ConsumerGroupSummary{{Name: "a"}, {Name: "b"}, {Name: "c"}}, got)
}

func TestFilterNames(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"orders", "orders-dlq"}, domain.FilterNames([]string{"orders-dlq", "payments", "orders"}, "orders"))
	require.Equal(t, []string{"a", "b"}, domain.FilterNames([]string{"b", "a"}, ""))
}

func TestSortBrokers(t *testing.T) {
	t.Parallel()
	b := []domain.BrokerSummary{{ID: 3}, {ID: 1}, {ID: 2}}
	domain.SortBrokers(b)
	require.Equal(t, []int32{1, 2, 3}, []int32{b[0].ID, b[1].ID, b[2].ID})
}
