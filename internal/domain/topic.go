package domain

import "sort"

// TopicSummary is the topic-level view shown by every listing surface.
type TopicSummary struct {
	Name              string `json:"name"`
	Partitions        int    `json:"partitions"`
	ReplicationFactor int    `json:"replication_factor"`
	MessageCount      int64  `json:"message_count"`
	// SizeBytes is not computed yet and is always 0.
	SizeBytes int64 `json:"size_bytes"`
}

// PartitionMetadata is the raw metadata of one partition.
type PartitionMetadata struct {
	ID       int32
	Replicas []int32
}

// TopicMetadata is the raw metadata of one topic as returned by the cluster.
type TopicMetadata struct {
	Name       string
	Partitions []PartitionMetadata
}

// Watermark bounds the offsets currently retained by a partition.
type Watermark struct {
	Low  int64
	High int64
}

// WatermarkResult is the outcome of a single partition watermark fetch.
type WatermarkResult struct {
	Watermark
	Err error
}

// Watermarks maps topic -> partition -> fetch outcome. Partitions that were never fetched
// are simply absent.
type Watermarks map[string]map[int32]WatermarkResult

// Set records the outcome for one partition.
func (w Watermarks) Set(topic string, partition int32, res WatermarkResult) {
	ps, ok := w[topic]
	if !ok {
		ps = make(map[int32]WatermarkResult)
		w[topic] = ps
	}
	ps[partition] = res
}

// SummarizeTopics turns raw topic metadata and per-partition watermarks into topic
// summaries sorted by name.
//
// A partition whose watermark fetch failed (or is missing) adds nothing to the message count
// and never fails the topic.
func SummarizeTopics(topics []TopicMetadata, marks Watermarks) []TopicSummary {
	out := make([]TopicSummary, 0, len(topics))
	for _, t := range topics {
		s := TopicSummary{
			Name:       t.Name,
			Partitions: len(t.Partitions),
		}
		for _, p := range t.Partitions {
			if n := len(p.Replicas); n > s.ReplicationFactor {
				s.ReplicationFactor = n
			}
			res, ok := marks[t.Name][p.ID]
			if !ok || res.Err != nil {
				continue
			}
			s.MessageCount += res.High - res.Low
		}
		out = append(out, s)
	}
	SortTopics(out)
	return out
}

// SortTopics orders topics by name, byte-wise.
func SortTopics(topics []TopicSummary) {
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
}
