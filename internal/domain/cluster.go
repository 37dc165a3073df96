// Package domain defines the core entities of the kafka-utils console: broker, topic and
// consumer group summaries, the raw cluster facts they are derived from, and the abstractions
// for talking to a Kafka cluster.
package domain

import (
	"sort"
	"strings"
)

// BrokerSummary holds the identity and address of a broker.
type BrokerSummary struct {
	ID   int32  `json:"id"`
	Host string `json:"host"`
	Port int32  `json:"port"`
}

// ConsumerGroupSummary holds basic info about a consumer group.
type ConsumerGroupSummary struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// SortBrokers orders brokers by id.
func SortBrokers(brokers []BrokerSummary) {
	sort.Slice(brokers, func(i, j int) bool { return brokers[i].ID < brokers[j].ID })
}

// FilterGroups keeps the groups whose name starts with prefix (case-sensitive) and returns
// them sorted by name. An empty prefix keeps every group.
func FilterGroups(groups []ConsumerGroupSummary, prefix string) []ConsumerGroupSummary {
	out := make([]ConsumerGroupSummary, 0, len(groups))
	for _, g := range groups {
		if strings.HasPrefix(g.Name, prefix) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FilterNames keeps the names starting with prefix, sorted ascending.
func FilterNames(names []string, prefix string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
