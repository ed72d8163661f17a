package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todobox/internal/service"
)

// Kind is the action a handle triggers.
type Kind string

const (
	Accept   Kind = "accept"
	Complete Kind = "complete"
	Revert   Kind = "revert"
	Delete   Kind = "delete"
)

// ErrInvalidHandle is returned by ParseHandle for unrecognised handles.
var ErrInvalidHandle = errors.New("invalid handle")

// Action is a parsed handle. ID is zero for Accept.
type Action struct {
	Kind Kind
	ID   int
}

// String returns the handle for a.
func (a Action) String() string {
	if a.Kind == Accept {
		return string(Accept)
	}
	return fmt.Sprintf("%s-%d", a.Kind, a.ID)
}

// CompleteHandle returns the handle of a pending row's completion toggle.
func CompleteHandle(id int) string { return Action{Complete, id}.String() }

// RevertHandle returns the handle of a completed row's revert control.
func RevertHandle(id int) string { return Action{Revert, id}.String() }

// DeleteHandle returns the handle of a completed row's delete control.
func DeleteHandle(id int) string { return Action{Delete, id}.String() }

// ParseHandle parses "accept", "complete-{id}", "revert-{id}" or
// "delete-{id}". Ids must be positive decimal integers.
func ParseHandle(s string) (Action, error) {
	s = strings.TrimSpace(s)
	if s == string(Accept) {
		return Action{Kind: Accept}, nil
	}

	prefix, num, ok := strings.Cut(s, "-")
	if !ok {
		return Action{}, fmt.Errorf("%w: %s", ErrInvalidHandle, s)
	}
	kind := Kind(prefix)
	switch kind {
	case Complete, Revert, Delete:
	default:
		return Action{}, fmt.Errorf("%w: %s", ErrInvalidHandle, s)
	}

	id, err := ParseID(num)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %s", ErrInvalidHandle, s)
	}
	return Action{Kind: kind, ID: id}, nil
}

// ParseID parses a task id: one or more ASCII digits, greater than zero.
func ParseID(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid task id: %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid task id: %s", s)
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return id, nil
}

// Apply dispatches a to the widget that owns it. changed is false when the
// action was a no-op, e.g. deleting an id that is not completed.
func Apply(svc service.Service, a Action) (changed bool, err error) {
	switch a.Kind {
	case Accept:
		was := svc.ConsentVisible()
		return was, svc.AcceptConsent()
	case Complete:
		return svc.CompleteTask(a.ID)
	case Revert:
		return svc.RevertTask(a.ID)
	case Delete:
		return svc.DeleteTask(a.ID)
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidHandle, a)
	}
}
