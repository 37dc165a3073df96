package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Handler populates the table for one command and reacts to its command-specific keys.
type Handler interface {
	Definition() TableDefinition
	Activate(ctx context.Context, gw domain.ClusterGateway) (TableData, error)
	HandleKey(ctx context.Context, msg tea.KeyMsg, s *Session, gw domain.ClusterGateway)
}

type topicsHandler struct {
	topics []domain.TopicSummary
}

func (h *topicsHandler) Definition() TableDefinition {
	return TableDefinition{
		Columns: []Column{
			{Title: "Name", Align: lipgloss.Left},
			{Title: "Partitions", Align: lipgloss.Right},
			{Title: "Replication Factor", Align: lipgloss.Right},
			{Title: "Message Count", Align: lipgloss.Right},
			{Title: "Size", Align: lipgloss.Right},
		},
		Selectable: true,
	}
}

func (h *topicsHandler) Activate(ctx context.Context, gw domain.ClusterGateway) (TableData, error) {
	topics, err := gw.ListTopics(ctx)
	if err != nil {
		return TableData{}, err
	}
	domain.SortTopics(topics)
	h.topics = topics
	return topicsTable(topics), nil
}

func topicsTable(topics []domain.TopicSummary) TableData {
	rows := make([]Row, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, Row{
			Cells: []string{
				t.Name,
				strconv.Itoa(t.Partitions),
				strconv.Itoa(t.ReplicationFactor),
				strconv.FormatInt(t.MessageCount, 10),
				strconv.FormatInt(t.SizeBytes, 10),
			},
			Muted: strings.HasPrefix(t.Name, "_"),
		})
	}
	return TableData{Rows: rows, Widths: widthHints(rows, 5, 0)}
}

// selectedNames resolves the selected rows to topic names through the stored summaries.
func (h *topicsHandler) selectedNames(t *Table) []string {
	var names []string
	for _, i := range t.Selected() {
		if i < len(h.topics) {
			names = append(names, h.topics[i].Name)
		}
	}
	return names
}

func (h *topicsHandler) HandleKey(ctx context.Context, msg tea.KeyMsg, s *Session, gw domain.ClusterGateway) {
	if !key.Matches(msg, keys.Delete) {
		return
	}
	names := h.selectedNames(s.table)
	if len(names) == 0 {
		return
	}

	utils.Logger.Info("deleting topics", "topics", names)
	results, err := gw.DeleteTopics(ctx, names)
	if err != nil {
		utils.Logger.Error("delete topics failed", "err", err)
		s.notify(NotificationError, err.Error())
		return
	}
	if failures := results.Failures(); len(failures) > 0 {
		s.notify(NotificationError, failures.String())
		return
	}
	s.notify(NotificationInfo, "Topics deleted successfully")
}

type brokersHandler struct {
	brokers []domain.BrokerSummary
}

func (h *brokersHandler) Definition() TableDefinition {
	return TableDefinition{
		Columns: []Column{
			{Title: "ID", Align: lipgloss.Right},
			{Title: "Host", Align: lipgloss.Left},
			{Title: "Port", Align: lipgloss.Right},
		},
	}
}

func (h *brokersHandler) Activate(ctx context.Context, gw domain.ClusterGateway) (TableData, error) {
	brokers, err := gw.ListBrokers(ctx)
	if err != nil {
		return TableData{}, err
	}
	domain.SortBrokers(brokers)
	h.brokers = brokers

	rows := make([]Row, 0, len(brokers))
	for _, b := range brokers {
		rows = append(rows, Row{Cells: []string{
			strconv.Itoa(int(b.ID)),
			b.Host,
			strconv.Itoa(int(b.Port)),
		}})
	}
	return TableData{Rows: rows, Widths: widthHints(rows, 3, 1)}, nil
}

func (h *brokersHandler) HandleKey(_ context.Context, msg tea.KeyMsg, s *Session, _ domain.ClusterGateway) {
	readOnly(s, msg, "brokers")
}

// groupsHandler lists every consumer group. The console view is read-only.
type groupsHandler struct {
	groups []domain.ConsumerGroupSummary
}

func (h *groupsHandler) Definition() TableDefinition {
	return TableDefinition{
		Columns: []Column{
			{Title: "Name", Align: lipgloss.Left},
			{Title: "State", Align: lipgloss.Left},
		},
	}
}

func (h *groupsHandler) Activate(ctx context.Context, gw domain.ClusterGateway) (TableData, error) {
	groups, err := gw.ListConsumerGroups(ctx, "")
	if err != nil {
		return TableData{}, err
	}
	h.groups = groups

	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, Row{Cells: []string{g.Name, g.State}})
	}
	return TableData{Rows: rows, Widths: widthHints(rows, 2, 0)}, nil
}

func (h *groupsHandler) HandleKey(_ context.Context, msg tea.KeyMsg, s *Session, _ domain.ClusterGateway) {
	readOnly(s, msg, "consumer groups")
}

// readOnly answers the delete key in views that cannot delete with a status hint.
func readOnly(s *Session, msg tea.KeyMsg, what string) {
	if key.Matches(msg, keys.Delete) {
		s.status = what + " are read-only in the console"
	}
}
