package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConnection is returned when a client cannot be built or reach the cluster.
	ErrConnection = errors.New("connection error")

	// ErrFetch is returned when metadata or group listing fails.
	ErrFetch = errors.New("fetch error")

	// ErrAuthToken is returned when a token cannot be acquired in time.
	ErrAuthToken = errors.New("auth token error")

	// ErrUnknownCommand is returned for console input that names no command.
	ErrUnknownCommand = errors.New("unknown command")
)

// DeleteResult is the outcome of deleting one topic or group.
type DeleteResult struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// DeleteResults holds one result per requested entity.
type DeleteResults []DeleteResult

// Failures returns only the failed results.
func (r DeleteResults) Failures() DeleteResults {
	var out DeleteResults
	for _, res := range r {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// String renders one "name: reason" line per failure.
func (r DeleteResults) String() string {
	lines := make([]string, 0, len(r))
	for _, res := range r.Failures() {
		lines = append(lines, fmt.Sprintf("%s: %v", res.Name, res.Err))
	}
	return strings.Join(lines, "\n")
}
