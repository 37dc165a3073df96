package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the input mode of a session.
type Mode int

const (
	ModeNormal Mode = iota
	ModeCommandEntry
)

func (m Mode) String() string {
	if m == ModeCommandEntry {
		return "COMMAND"
	}
	return "NORMAL"
}

// NotificationKind distinguishes informational and error notifications.
type NotificationKind int

const (
	NotificationInfo NotificationKind = iota
	NotificationError
)

// Notification is a modal message that blocks input until dismissed.
type Notification struct {
	Kind    NotificationKind
	Message string
}

type activeCommand struct {
	kind    CommandKind
	handler Handler
}

// Session is the whole interactive state. It is only ever modified by Update.
type Session struct {
	mode         Mode
	input        textinput.Model
	active       *activeCommand
	notification *Notification
	status       string
	table        *Table
	history      []string
	exit         bool
}

// NewSession creates a session in normal mode with nothing active.
func NewSession() *Session {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "list-topics"
	ti.CharLimit = 256
	ti.Focus()
	return &Session{
		mode:  ModeNormal,
		input: ti,
		table: NewTable(),
	}
}

func (s *Session) Mode() Mode                  { return s.mode }
func (s *Session) Input() string               { return s.input.Value() }
func (s *Session) Notification() *Notification { return s.notification }
func (s *Session) Table() *Table               { return s.table }
func (s *Session) Status() string              { return s.status }
func (s *Session) History() []string           { return s.history }
func (s *Session) Exit() bool                  { return s.exit }

// Active returns the kind of the active command, if any.
func (s *Session) Active() (CommandKind, bool) {
	if s.active == nil {
		return 0, false
	}
	return s.active.kind, true
}

func (s *Session) notify(kind NotificationKind, msg string) {
	s.notification = &Notification{Kind: kind, Message: msg}
}

func (s *Session) clearInput() {
	s.input.Reset()
}

// Update applies one key event to s. Gateway calls made while handling the event complete
// before Update returns. The returned command is tea.Quit once the session exits.
func Update(ctx context.Context, s *Session, msg tea.KeyMsg, gw domain.ClusterGateway) tea.Cmd {
	if s.exit {
		return nil
	}
	// status hints last until the next key
	s.status = ""
	if key.Matches(msg, keys.ForceQuit) {
		s.exit = true
		return tea.Quit
	}

	switch s.mode {
	case ModeCommandEntry:
		return updateCommandEntry(ctx, s, msg, gw)
	default:
		return updateNormal(ctx, s, msg, gw)
	}
}

func updateCommandEntry(ctx context.Context, s *Session, msg tea.KeyMsg, gw domain.ClusterGateway) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Cancel):
		if s.notification != nil {
			s.notification = nil
			return nil
		}
		s.mode = ModeNormal
		s.clearInput()
		return nil
	case key.Matches(msg, keys.Submit):
		if s.notification == nil {
			submit(ctx, s, gw)
		}
		return nil
	}

	if s.notification != nil {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func updateNormal(ctx context.Context, s *Session, msg tea.KeyMsg, gw domain.ClusterGateway) tea.Cmd {
	if s.notification != nil {
		if key.Matches(msg, keys.Cancel) {
			s.notification = nil
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		s.exit = true
		return tea.Quit
	case key.Matches(msg, keys.Command):
		s.mode = ModeCommandEntry
		return nil
	}

	if s.active == nil {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Up):
		s.table.SelectPrevious()
	case key.Matches(msg, keys.Down):
		s.table.SelectNext()
	case key.Matches(msg, keys.Toggle):
		s.table.ToggleSelected()
	default:
		s.active.handler.HandleKey(ctx, msg, s, gw)
	}
	return nil
}

// submit hands the input buffer to the command registry.
func submit(ctx context.Context, s *Session, gw domain.ClusterGateway) {
	text := s.input.Value()
	kind, err := Lookup(text)
	if errors.Is(err, domain.ErrUnknownCommand) {
		utils.Logger.Debug("rejected console input", "err", err)
		s.notify(NotificationError, fmt.Sprintf("Unknown command '%s'", text))
		return
	}

	s.history = append(s.history, text)
	s.clearInput()
	s.mode = ModeNormal
	s.notification = nil
	activate(ctx, s, kind, gw)
}

// activate makes a fresh handler for kind the active command and fills the table from it.
func activate(ctx context.Context, s *Session, kind CommandKind, gw domain.ClusterGateway) {
	h := newHandler(kind)
	s.active = &activeCommand{kind: kind, handler: h}
	s.table.SetDefinition(h.Definition())

	utils.Logger.Debug("activating command", "command", kind.String())
	data, err := h.Activate(ctx, gw)
	if err != nil {
		utils.Logger.Error("command failed", "command", kind.String(), "err", err)
		s.table.SetData(TableData{})
		s.notify(NotificationError, fmt.Sprintf("Command '%s' failed: %v", kind, err))
		return
	}
	s.table.SetData(data)
}
