// Package service defines the page the command layer renders and mutates:
// the consent banner and the task list mounted over one storage origin.
package service

import (
	"context"

	"todobox/internal/todo"
)

// Service is the surface the rendering layer drives. Each method corresponds
// to one UI event or one read of rendered state.
// Commands never touch storage directly.
type Service interface {
	// ConsentVisible reports whether the cookie banner is shown.
	ConsentVisible() bool

	// ConsentMessage returns the banner text.
	ConsentMessage() string

	// AcceptConsent hides the banner and records consent.
	AcceptConsent() error

	// Pending returns pending tasks, newest first.
	Pending() []todo.Task

	// Completed returns completed tasks in completion order.
	Completed() []todo.Task

	// AddTask creates a task. Blank text reports added == false.
	AddTask(text string) (task todo.Task, added bool, err error)

	// CompleteTask moves a pending task to completed.
	CompleteTask(id int) (bool, error)

	// RevertTask moves a completed task back to pending.
	RevertTask(id int) (bool, error)

	// DeleteTask removes a completed task.
	DeleteTask(id int) (bool, error)

	// Reset clears storage for the origin and remounts both widgets.
	Reset() error
}

// Mirror copies the task list to a remote task service.
type Mirror interface {
	// Push makes the remote list named listName match pending and completed.
	Push(ctx context.Context, listName string, pending, completed []todo.Task) (PushResult, error)
}
