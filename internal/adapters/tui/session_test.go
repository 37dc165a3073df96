package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func newGateway() *testutil.FakeGateway {
	gw := testutil.NewFakeGateway()
	gw.Topics = []domain.TopicSummary{
		{Name: "payments", Partitions: 6, ReplicationFactor: 3, MessageCount: 42},
		{Name: "_schemas", Partitions: 1, ReplicationFactor: 3, MessageCount: 7},
		{Name: "orders", Partitions: 3, ReplicationFactor: 2, MessageCount: 150},
	}
	gw.Brokers = []domain.BrokerSummary{{ID: 2, Host: "b2", Port: 9092}, {ID: 1, Host: "b1", Port: 9092}}
	gw.Groups = []domain.ConsumerGroupSummary{{Name: "svc-b", State: "Stable"}, {Name: "svc-a", State: "Empty"}}
	return gw
}

// send feeds every key to the session in order.
func send(s *Session, gw domain.ClusterGateway, msgs ...tea.KeyMsg) {
	for _, m := range msgs {
		Update(context.Background(), s, m, gw)
	}
}

// typeCommand enters command mode, types text and submits it.
func typeCommand(s *Session, gw domain.ClusterGateway, text string) {
	send(s, gw, runes(":"))
	for _, r := range text {
		send(s, gw, runes(string(r)))
	}
	send(s, gw, keyEnter)
}

func TestSession_InitialState(t *testing.T) {
	s := NewSession()
	require.Equal(t, ModeNormal, s.Mode())
	require.Empty(t, s.Input())
	require.Nil(t, s.Notification())
	_, active := s.Active()
	require.False(t, active)
	require.False(t, s.Exit())
}

func TestSession_QuitKeys(t *testing.T) {
	gw := newGateway()

	s := NewSession()
	cmd := Update(context.Background(), s, runes("q"), gw)
	require.True(t, s.Exit())
	require.NotNil(t, cmd)

	s = NewSession()
	send(s, gw, keyCtrlC)
	require.True(t, s.Exit())

	// no transitions after exit
	send(s, gw, runes(":"))
	require.Equal(t, ModeNormal, s.Mode())
}

func TestSession_SubmitListTopics(t *testing.T) {
	gw := newGateway()
	s := NewSession()

	send(s, gw, runes(":"))
	require.Equal(t, ModeCommandEntry, s.Mode())
	for _, r := range "list-topics" {
		send(s, gw, runes(string(r)))
	}
	require.Equal(t, "list-topics", s.Input())

	send(s, gw, keyEnter)
	require.Equal(t, ModeNormal, s.Mode())
	require.Empty(t, s.Input())
	require.Nil(t, s.Notification())

	kind, ok := s.Active()
	require.True(t, ok)
	require.Equal(t, ListTopics, kind)
	require.Equal(t, []string{"list-topics"}, s.History())

	rows := s.Table().Data().Rows
	require.Len(t, rows, 3)
	require.Equal(t, "_schemas", rows[0].Cells[0])
	require.True(t, rows[0].Muted)
	require.Equal(t, "orders", rows[1].Cells[0])
	require.Equal(t, []string{"orders", "3", "2", "150", "0"}, rows[1].Cells)
	require.False(t, rows[1].Muted)
	require.Equal(t, "payments", rows[2].Cells[0])
	require.True(t, s.Table().Definition().Selectable)
}

func TestSession_UnknownCommand(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-brokers")
	before := s.Table().Data()

	typeCommand(s, gw, "list-foo")
	require.Equal(t, ModeCommandEntry, s.Mode())
	require.NotNil(t, s.Notification())
	require.Equal(t, NotificationError, s.Notification().Kind)
	require.Equal(t, "Unknown command 'list-foo'", s.Notification().Message)
	require.Equal(t, "list-foo", s.Input())

	kind, _ := s.Active()
	require.Equal(t, ListBrokers, kind)
	require.Equal(t, before, s.Table().Data())
	require.Equal(t, []string{"list-brokers"}, s.History())
}

func TestSession_EscapeInCommandEntry(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "nope")
	require.NotNil(t, s.Notification())

	// typing is ignored while the notification is shown
	send(s, gw, runes("x"), keyEnter)
	require.Equal(t, "nope", s.Input())

	send(s, gw, keyEsc)
	require.Nil(t, s.Notification())
	require.Equal(t, ModeCommandEntry, s.Mode())
	require.Equal(t, "nope", s.Input())

	send(s, gw, keyEsc)
	require.Equal(t, ModeNormal, s.Mode())
	require.Empty(t, s.Input())
}

func TestSession_ReactivationClearsSelection(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-topics")

	send(s, gw, keySpace, keyDown, keySpace)
	require.Equal(t, []int{0, 1}, s.Table().Selected())

	typeCommand(s, gw, "list-topics")
	require.Empty(t, s.Table().Selected())
	require.Equal(t, 2, gw.ListTopicsCalls)

	send(s, gw, keySpace)
	typeCommand(s, gw, "list-brokers")
	require.Empty(t, s.Table().Selected())
	require.False(t, s.Table().Definition().Selectable)

	// brokers cannot be selected
	send(s, gw, keySpace)
	require.Empty(t, s.Table().Selected())
	rows := s.Table().Data().Rows
	require.Equal(t, "1", rows[0].Cells[0])
}

func TestSession_NavigationWithoutActiveCommand(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	send(s, gw, keyDown, keyUp, keySpace, runes("d"))
	require.Equal(t, ModeNormal, s.Mode())
	require.Empty(t, gw.DeleteTopicsCalls)
}

func TestSession_DeleteSelectedTopics(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-topics")

	send(s, gw, keyDown, keySpace, keyDown, keySpace, runes("d"))
	require.Len(t, gw.DeleteTopicsCalls, 1)
	require.Equal(t, []string{"orders", "payments"}, gw.DeleteTopicsCalls[0])

	n := s.Notification()
	require.NotNil(t, n)
	require.Equal(t, NotificationInfo, n.Kind)
	require.Equal(t, "Topics deleted successfully", n.Message)

	// the view keeps its stale rows
	require.Len(t, s.Table().Data().Rows, 3)
	require.Equal(t, 1, gw.ListTopicsCalls)

	// keys are swallowed until dismissed
	send(s, gw, runes("q"))
	require.False(t, s.Exit())
	send(s, gw, keyEsc)
	require.Nil(t, s.Notification())
}

func TestSession_DeleteReportsFailures(t *testing.T) {
	gw := newGateway()
	gw.DeleteErrs["orders"] = errors.New("TOPIC_AUTHORIZATION_FAILED")
	gw.DeleteErrs["payments"] = errors.New("UNKNOWN_TOPIC_OR_PARTITION")
	s := NewSession()
	typeCommand(s, gw, "list-topics")

	send(s, gw, keySpace, keyDown, keySpace, keyDown, keySpace, runes("d"))
	n := s.Notification()
	require.NotNil(t, n)
	require.Equal(t, NotificationError, n.Kind)
	require.Equal(t, "orders: TOPIC_AUTHORIZATION_FAILED\npayments: UNKNOWN_TOPIC_OR_PARTITION", n.Message)
}

func TestSession_DeleteCallFails(t *testing.T) {
	gw := newGateway()
	gw.DeleteErr = domain.ErrConnection
	s := NewSession()
	typeCommand(s, gw, "list-topics")

	send(s, gw, keySpace, runes("d"))
	require.Equal(t, NotificationError, s.Notification().Kind)
	require.Contains(t, s.Notification().Message, "connection error")
	require.False(t, s.Exit())
}

func TestSession_DeleteWithoutSelectionIsNoop(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-topics")
	send(s, gw, runes("d"))
	require.Empty(t, gw.DeleteTopicsCalls)
	require.Nil(t, s.Notification())
}

func TestSession_ActivationFailure(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-topics")
	require.Equal(t, 3, s.Table().RowCount())

	gw.TopicsErr = domain.ErrFetch
	typeCommand(s, gw, "list-topics")
	require.Equal(t, ModeNormal, s.Mode())
	require.Equal(t, 0, s.Table().RowCount())
	n := s.Notification()
	require.NotNil(t, n)
	require.Equal(t, NotificationError, n.Kind)
	require.Contains(t, n.Message, "fetch error")
	require.False(t, s.Exit())
}

func TestSession_ConsumerGroupsReadOnly(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-consumer-groups")

	rows := s.Table().Data().Rows
	require.Len(t, rows, 2)
	require.Equal(t, []string{"svc-a", "Empty"}, rows[0].Cells)

	send(s, gw, runes("d"))
	require.Empty(t, gw.DeleteGroupsCalls)
	require.Nil(t, s.Notification())
	require.Equal(t, "consumer groups are read-only in the console", s.Status())

	send(s, gw, keyDown)
	require.Empty(t, s.Status())
}

func TestSession_BrokersReadOnly(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-brokers")

	send(s, gw, runes("d"))
	require.Equal(t, "brokers are read-only in the console", s.Status())

	send(s, gw, runes("x"))
	require.Empty(t, s.Status())
}

func TestSession_TopicsDeleteSetsNoStatus(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	typeCommand(s, gw, "list-topics")

	send(s, gw, runes("d"))
	require.Empty(t, s.Status())
}

func TestSession_BackspaceEditsInput(t *testing.T) {
	gw := newGateway()
	s := NewSession()
	send(s, gw, runes(":"), runes("a"), runes("b"), tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "a", s.Input())
}
