package tui

import (
	"context"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model adapts a Session to the bubbletea program loop. Gateway calls run inside Update,
// so the console does not accept input while one is in flight.
type Model struct {
	ctx     context.Context
	session *Session
	gw      domain.ClusterGateway
	help    help.Model
	label   string
	width   int
	height  int
}

// NewModel creates the console model. label names the cluster in the header.
func NewModel(ctx context.Context, gw domain.ClusterGateway, label string) Model {
	return Model{
		ctx:     ctx,
		session: NewSession(),
		gw:      gw,
		help:    help.New(),
		label:   label,
	}
}

// Session exposes the underlying state.
func (m Model) Session() *Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, Update(m.ctx, m.session, msg, m.gw)
	}

	var cmd tea.Cmd
	m.session.input, cmd = m.session.input.Update(msg)
	return m, cmd
}

// Run starts the console and blocks until the user quits.
func Run(ctx context.Context, gw domain.ClusterGateway, label string) error {
	p := tea.NewProgram(NewModel(ctx, gw, label), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
