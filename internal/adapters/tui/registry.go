package tui

import (
	"fmt"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
)

// CommandKind identifies one console command.
type CommandKind int

const (
	ListTopics CommandKind = iota
	ListBrokers
	ListConsumerGroups
)

var commandNames = map[CommandKind]string{
	ListTopics:         "list-topics",
	ListBrokers:        "list-brokers",
	ListConsumerGroups: "list-consumer-groups",
}

// String returns the text that invokes the command.
func (k CommandKind) String() string {
	if n, ok := commandNames[k]; ok {
		return n
	}
	return "unknown"
}

// Commands returns every known command in a stable order.
func Commands() []CommandKind {
	return []CommandKind{ListTopics, ListBrokers, ListConsumerGroups}
}

// Parse matches text exactly (case-sensitive) against the known command names.
func Parse(text string) (CommandKind, bool) {
	for _, k := range Commands() {
		if commandNames[k] == text {
			return k, true
		}
	}
	return 0, false
}

// Lookup is Parse for callers that want an error: unmatched text wraps domain.ErrUnknownCommand.
func Lookup(text string) (CommandKind, error) {
	if kind, ok := Parse(text); ok {
		return kind, nil
	}
	return 0, fmt.Errorf("%w '%s'", domain.ErrUnknownCommand, text)
}

// newHandler constructs fresh handler state for kind.
func newHandler(kind CommandKind) Handler {
	switch kind {
	case ListTopics:
		return &topicsHandler{}
	case ListBrokers:
		return &brokersHandler{}
	case ListConsumerGroups:
		return &groupsHandler{}
	}
	return nil
}
